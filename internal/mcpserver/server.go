// Package mcpserver provides an MCP (Model Context Protocol) server that
// exposes Bloom's journaling and reflection tools for LLM integration via
// stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/minebloom/bloom/internal/companion"
	"github.com/minebloom/bloom/internal/journal"
)

// Server wraps the MCP server with Bloom tools.
type Server struct {
	mcp *server.MCPServer
	svc *companion.Service
}

// New creates a new MCP server with all Bloom tools registered.
func New(svc *companion.Service) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"Bloom",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("login",
		mcp.WithDescription("Start a session for a user. Loads the user's persisted journal. "+
			"The journal secret defaults to the partner name, or a fallback when none is given."),
		mcp.WithString("display_name", mcp.Required(), mcp.Description("User's display name")),
		mcp.WithString("partner_name", mcp.Description("Optional partner name")),
	), s.login)

	s.mcp.AddTool(mcp.NewTool("add_journal_entry",
		mcp.WithDescription("Append a free-text entry to the active journal. "+
			"Requires the journal secret. Entries are persisted per the bloom://journal-format contract."),
		mcp.WithString("secret", mcp.Required(), mcp.Description("Journal secret")),
		mcp.WithString("content", mcp.Required(), mcp.Description("Entry text")),
		mcp.WithString("date", mcp.Description("RFC 3339 timestamp or date-only value (midnight); empty means now")),
	), s.addJournalEntry)

	s.mcp.AddTool(mcp.NewTool("list_journal_days",
		mcp.WithDescription("List the active journal grouped by calendar day, newest first. "+
			"Requires the journal secret."),
		mcp.WithString("secret", mcp.Required(), mcp.Description("Journal secret")),
	), s.listJournalDays)

	s.mcp.AddTool(mcp.NewTool("search_journal",
		mcp.WithDescription("Full-text search through the active journal's entries. "+
			"Requires the journal secret."),
		mcp.WithString("secret", mcp.Required(), mcp.Description("Journal secret")),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query string")),
	), s.searchJournal)

	s.mcp.AddTool(mcp.NewTool("get_affirmation",
		mcp.WithDescription("Get a supportive affirmation: 'daily' is stable for the calendar day, "+
			"'random' differs per call."),
		mcp.WithString("kind", mcp.Description("'daily' (default) or 'random'")),
	), s.getAffirmation)

	s.mcp.AddTool(mcp.NewTool("red_flag_check",
		mcp.WithDescription("Score the 5-item red-flag checklist. Answers are comma-separated "+
			"yes/no values in checklist order, e.g. 'yes,no,no,yes,no'."),
		mcp.WithString("answers", mcp.Required(), mcp.Description("Comma-separated yes/no answers")),
	), s.redFlagCheck)

	// Resource: journal file format contract.
	s.mcp.AddResource(
		mcp.NewResource("bloom://journal-format", "Journal File Format",
			mcp.WithResourceDescription("The persisted per-user journal file contract."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readJournalFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// requireSecret gates journal tools the same way the HTTP middleware
// gates journal routes.
func (s *Server) requireSecret(ctx context.Context, req mcp.CallToolRequest) *mcp.CallToolResult {
	secret, err := req.RequireString("secret")
	if err != nil {
		return mcp.NewToolResultError(err.Error())
	}
	ok, err := s.svc.CheckSecret(ctx, secret)
	if err != nil {
		return mcp.NewToolResultError("no active session; call login first")
	}
	if !ok {
		return mcp.NewToolResultError("journal locked: wrong secret")
	}
	return nil
}

func (s *Server) login(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	displayName, err := req.RequireString("display_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	partner := ""
	if p, pErr := req.RequireString("partner_name"); pErr == nil {
		partner = p
	}
	view, err := s.svc.Login(ctx, displayName, partner)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(view, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) addJournalEntry(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if denied := s.requireSecret(ctx, req); denied != nil {
		return denied, nil
	}
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	dateStr := ""
	if d, dErr := req.RequireString("date"); dErr == nil {
		dateStr = d
	}
	at, err := journal.ParseWhen(dateStr)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	entry, err := s.svc.AppendEntry(ctx, content, at)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !entry.Persisted {
		return mcp.NewToolResultText("appended (in memory only: the journal file could not be written)"), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("appended entry dated %s", entry.Date.Format("2006-01-02 15:04"))), nil
}

func (s *Server) listJournalDays(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if denied := s.requireSecret(ctx, req); denied != nil {
		return denied, nil
	}
	groups, err := s.svc.Timeline(ctx, true)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(groups) == 0 {
		return mcp.NewToolResultText("journal is empty"), nil
	}
	var b strings.Builder
	for _, g := range groups {
		fmt.Fprintf(&b, "%s (%d entries)\n", g.Day, len(g.Entries))
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) searchJournal(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if denied := s.requireSecret(ctx, req); denied != nil {
		return denied, nil
	}
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	results, err := s.svc.SearchJournal(ctx, query, 20)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(results, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getAffirmation(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind := "daily"
	if k, err := req.RequireString("kind"); err == nil && k != "" {
		kind = k
	}
	switch kind {
	case "daily":
		return mcp.NewToolResultText(s.svc.DailyAffirmation()), nil
	case "random":
		return mcp.NewToolResultText(s.svc.RandomAffirmation()), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown kind %q (want daily or random)", kind)), nil
	}
}

func (s *Server) redFlagCheck(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("answers")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	answers, err := parseAnswers(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	res, err := s.svc.RedFlagCheck(ctx, answers)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(res, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

// parseAnswers turns "yes,no,no,yes,no" into a boolean slice.
func parseAnswers(raw string) ([]bool, error) {
	parts := strings.Split(raw, ",")
	out := make([]bool, 0, len(parts))
	for _, p := range parts {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "yes", "y", "true", "1":
			out = append(out, true)
		case "no", "n", "false", "0":
			out = append(out, false)
		default:
			return nil, fmt.Errorf("unrecognized answer %q (want yes/no)", p)
		}
	}
	return out, nil
}

func (s *Server) readJournalFormatResource(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "bloom://journal-format",
			MIMEType: "text/markdown",
			Text:     JournalFormatContract,
		},
	}, nil
}
