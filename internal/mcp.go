package internal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// MCPServer wraps the MCP server and application dependencies
type MCPServer struct {
	app       *App
	mcpServer *server.MCPServer
}

// NewMCPServer creates a new MCP server instance
func NewMCPServer(app *App, version string) *MCPServer {
	mcpServer := server.NewMCPServer(
		"tubequiz-server",
		version,
		server.WithToolCapabilities(true),
	)

	s := &MCPServer{
		app:       app,
		mcpServer: mcpServer,
	}

	s.registerTools()

	return s
}

func questionTypeTags() []string {
	tags := make([]string, 0, len(QuestionTypes()))
	for _, qt := range QuestionTypes() {
		tags = append(tags, qt.String())
	}
	return tags
}

// registerTools registers all available MCP tools
func (s *MCPServer) registerTools() {
	cfg := s.app.Config()

	s.mcpServer.AddTool(mcp.NewTool("generate_quiz",
		mcp.WithDescription("Generate quiz questions from the transcript of a YouTube video. Returns the questions followed by an answer key. Fails if the video has no captions."),
		mcp.WithString("url",
			mcp.Description("YouTube video URL"),
			mcp.Required(),
		),
		mcp.WithString("question_type",
			mcp.Description("Kind of questions to write"),
			mcp.Enum(questionTypeTags()...),
			mcp.DefaultString(cfg.QuestionType),
		),
		mcp.WithNumber("count",
			mcp.Description(fmt.Sprintf("Number of questions (1-%d)", MaxQuestions)),
			mcp.DefaultNumber(float64(cfg.Count)),
		),
		mcp.WithString("model",
			mcp.Description("Completion model, one of: "+strings.Join(cfg.Models, ", ")),
			mcp.DefaultString(cfg.Model),
		),
		mcp.WithBoolean("humor",
			mcp.Description("Add a ridiculous choice per MCQ question, or a funny final question for other types"),
			mcp.DefaultBool(cfg.Humor),
		),
	), s.handleGenerateQuiz)

	s.mcpServer.AddTool(mcp.NewTool("get_youtube_transcript",
		mcp.WithDescription("Get the existing YouTube captions of a video as plain text. Fails if no captions are available."),
		mcp.WithString("url",
			mcp.Description("YouTube video URL or ID"),
			mcp.Required(),
		),
	), s.handleGetTranscript)
}

// handleGenerateQuiz implements the generate_quiz tool
func (s *MCPServer) handleGenerateQuiz(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, err := request.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError("url parameter is required and must be a string"), nil
	}

	req := s.app.NewRequest(url)
	req.QuestionType = request.GetString("question_type", req.QuestionType)
	req.Count = request.GetInt("count", req.Count)
	req.Model = request.GetString("model", req.Model)
	req.Humor = request.GetBool("humor", req.Humor)

	if err := ValidateModel(req.Model, s.app.Config().Models); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.app.log.Infow("generate_quiz called", "url", url, "type", req.QuestionType, "count", req.Count)

	result := s.app.Generate(ctx, req)
	if result.Err != nil {
		return mcp.NewToolResultError(result.Message()), nil
	}

	return mcp.NewToolResultText(result.Text), nil
}

// handleGetTranscript implements the get_youtube_transcript tool
func (s *MCPServer) handleGetTranscript(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, err := request.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError("url parameter is required and must be a string"), nil
	}

	s.app.log.Infow("get_youtube_transcript called", "url", url)

	transcript, err := s.app.Transcript(ctx, url)
	if err != nil {
		return mcp.NewToolResultError(ErrorMessage(err)), nil
	}

	return mcp.NewToolResultText(transcript), nil
}

// Start starts the MCP server using the specified transport.
// The HTTP transport shuts down when ctx is cancelled.
func (s *MCPServer) Start(ctx context.Context, transport string, port int) error {
	if transport == "http" {
		httpServer := server.NewStreamableHTTPServer(s.mcpServer)
		addr := fmt.Sprintf(":%d", port)
		s.app.log.Infow("serving MCP over HTTP", "addr", addr)

		errCh := make(chan error, 1)
		go func() {
			errCh <- httpServer.Start(addr)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutting down MCP HTTP server: %w", err)
			}
			s.app.log.Infow("MCP HTTP server stopped")
			return nil
		}
	}

	s.app.log.Infow("serving MCP over stdio")
	return server.ServeStdio(s.mcpServer)
}
