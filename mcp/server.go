// Package mcp exposes the folkweb operations as tools over the Model
// Context Protocol. The server is a thin adapter: argument shapes are
// validated by the protocol layer, handlers delegate to a
// folkweb.FolkService, and fetch errors propagate out as failed tool
// invocations.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mpickford/folkweb"
)

// Server wraps an MCP server with the six folkweb tools registered.
type Server struct {
	mcp     *server.MCPServer
	service folkweb.FolkService
}

// NewServer creates a Server exposing service.
func NewServer(service folkweb.FolkService, version string) *Server {
	s := &Server{
		mcp:     server.NewMCPServer("folkweb", version, server.WithToolCapabilities(false)),
		service: service,
	}
	s.registerTools()
	return s
}

// ServeStdio runs the server over stdin/stdout until the client disconnects.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

func (s *Server) registerTools() {
	s.mcp.AddTool(mcp.NewTool("search_folk",
		mcp.WithDescription("Search the folk encyclopaedia's indexes for songs, artists, albums and ballads whose link text matches a query."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Text to search for (case-insensitive substring of link text)"),
		),
	), s.handleSearch)

	s.mcp.AddTool(mcp.NewTool("get_page",
		mcp.WithDescription("Fetch one encyclopaedia page and return its title, article text and related recordings."),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Site-absolute page path, e.g. /folk/songs/reynardine.html"),
		),
	), s.handlePage)

	s.mcp.AddTool(mcp.NewTool("child_ballads",
		mcp.WithDescription("Browse the Child ballad index, optionally filtered by a numeric range (e.g. \"12-40\") or free text."),
		mcp.WithString("filter",
			mcp.Description("Numeric range or free text; omit for the full index"),
		),
	), s.handleChildBallads)

	s.mcp.AddTool(mcp.NewTool("laws_index",
		mcp.WithDescription("Browse the Laws ballad index, optionally filtered by code prefix (e.g. \"L\") or free text."),
		mcp.WithString("filter",
			mcp.Description("Code prefix or free text; omit for the full index"),
		),
	), s.handleLawsIndex)

	s.mcp.AddTool(mcp.NewTool("artist_discography",
		mcp.WithDescription("Look up an artist's page and return their biography and record list."),
		mcp.WithString("artist",
			mcp.Required(),
			mcp.Description("Artist name, or a site-absolute page path starting with /"),
		),
	), s.handleArtistDiscography)

	s.mcp.AddTool(mcp.NewTool("record_labels",
		mcp.WithDescription("List known folk record labels with descriptions and site paths."),
	), s.handleRecordLabels)
}

func (s *Server) handleSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	text, err := s.service.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handlePage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	text, err := s.service.Page(ctx, path)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleChildBallads(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := s.service.ChildBallads(ctx, req.GetString("filter", ""))
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleLawsIndex(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := s.service.LawsIndex(ctx, req.GetString("filter", ""))
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleArtistDiscography(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	artist, err := req.RequireString("artist")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	text, err := s.service.ArtistDiscography(ctx, artist)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleRecordLabels(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(s.service.RecordLabels()), nil
}
