// ABOUTME: MCP resource providers for datepage
// ABOUTME: Exposes the unit catalogue, the current default page and open sessions

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/datepage/internal/paginate"
)

// ResourceData is the standard response format for all resources.
type ResourceData struct {
	Metadata ResourceMetadata  `json:"metadata"`
	Data     interface{}       `json:"data"`
	Links    map[string]string `json:"links"`
}

// ResourceMetadata contains metadata about the resource response.
type ResourceMetadata struct {
	Timestamp   time.Time `json:"timestamp"`
	Count       int       `json:"count"`
	ResourceURI string    `json:"resource_uri"`
}

const (
	unitsURI    = "datepage://units"
	currentURI  = "datepage://page/current"
	sessionsURI = "datepage://sessions"
)

var resourceLinks = map[string]string{
	"units":        unitsURI,
	"current_page": currentURI,
	"sessions":     sessionsURI,
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(
		mcp.Resource{
			URI:         unitsURI,
			Name:        "Calendar Units",
			Description: "Every supported calendar unit and whether it works with add/sub and start_of/end_of",
			MIMEType:    "application/json",
		},
		s.handleUnitsResource,
	)
	s.mcpServer.AddResource(
		mcp.Resource{
			URI:         currentURI,
			Name:        "Current Page",
			Description: "The page containing today using the configured unit, multiplier, direction and week start",
			MIMEType:    "application/json",
		},
		s.handleCurrentPageResource,
	)
	s.mcpServer.AddResource(
		mcp.Resource{
			URI:         sessionsURI,
			Name:        "Open Pager Sessions",
			Description: "Ids and current pages of every open pager session",
			MIMEType:    "application/json",
		},
		s.handleSessionsResource,
	)
}

func (s *Server) handleUnitsResource(_ context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	units := listUnits()
	return s.resourceContents(request.Params.URI, units.Units, units.Count)
}

func (s *Server) handleCurrentPageResource(_ context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	p, err := paginate.New(
		paginate.WithDate(s.now()),
		paginate.WithUnit(s.opts.Unit),
		paginate.WithMultiplier(s.opts.Multiplier),
		paginate.WithDirection(s.opts.Direction),
		paginate.WithWeekStart(s.opts.WeekStart),
		paginate.WithClock(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build current page: %w", err)
	}
	return s.resourceContents(request.Params.URI, s.pageOutput(p), 1)
}

func (s *Server) handleSessionsResource(_ context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	pages := make([]PageOutput, 0)
	for _, id := range s.sessionIDs() {
		err := s.withSession(id, func(p *paginate.Pager) error {
			out := s.pageOutput(p)
			out.SessionID = id
			out.Days = nil
			pages = append(pages, out)
			return nil
		})
		if err != nil {
			// closed between listing and reading
			continue
		}
	}
	return s.resourceContents(request.Params.URI, pages, len(pages))
}

func (s *Server) resourceContents(uri string, data interface{}, count int) ([]mcp.ResourceContents, error) {
	resourceData := ResourceData{
		Metadata: ResourceMetadata{
			Timestamp:   s.now(),
			Count:       count,
			ResourceURI: uri,
		},
		Data:  data,
		Links: resourceLinks,
	}

	jsonBytes, err := json.MarshalIndent(resourceData, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resource data: %w", err)
	}

	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
