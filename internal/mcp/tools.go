// ABOUTME: MCP tool definitions and handlers for date arithmetic and paging
// ABOUTME: Stateless add/sub/start/end tools plus session-based pager navigation

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/datepage/internal/calendar"
	"github.com/harper/datepage/internal/paginate"
	"github.com/harper/datepage/internal/timeutil"
)

// Type definitions for input/output structures

type ShiftInput struct {
	Date   string `json:"date"`
	Unit   string `json:"unit"`
	Amount *int   `json:"amount,omitempty"`
}

type BoundInput struct {
	Date string `json:"date"`
	Unit string `json:"unit"`
}

type DateOutput struct {
	Input  string    `json:"input"`
	Unit   string    `json:"unit"`
	Amount *int      `json:"amount,omitempty"`
	Result time.Time `json:"result"`
	Date   string    `json:"date"`
}

type PageOpenInput struct {
	Date       string  `json:"date,omitempty"`
	Unit       string  `json:"unit,omitempty"`
	Multiplier *int    `json:"multiplier,omitempty"`
	Direction  *string `json:"direction,omitempty"`
}

type PageMoveInput struct {
	SessionID string `json:"session_id"`
	HowMany   *int   `json:"how_many,omitempty"`
	Unit      string `json:"unit,omitempty"`
}

type PageSetDateInput struct {
	SessionID string `json:"session_id"`
	Date      string `json:"date"`
}

type PageCloseInput struct {
	SessionID string `json:"session_id"`
}

type PageOutput struct {
	SessionID         string    `json:"session_id,omitempty"`
	Date              string    `json:"date"`
	Unit              string    `json:"unit"`
	Multiplier        int       `json:"multiplier"`
	Direction         string    `json:"direction"`
	Start             time.Time `json:"start"`
	End               time.Time `json:"end"`
	StartDate         string    `json:"start_date"`
	EndDate           string    `json:"end_date"`
	DayCount          int       `json:"day_count"`
	Days              []string  `json:"days,omitempty"`
	IsCurrentInterval bool      `json:"is_current_interval"`
}

type CloseOutput struct {
	Success   bool   `json:"success"`
	SessionID string `json:"session_id"`
}

type UnitInfo struct {
	Name       string `json:"name"`
	Arithmetic bool   `json:"arithmetic"`
	Bounds     bool   `json:"bounds"`
}

type ListUnitsOutput struct {
	Units []UnitInfo `json:"units"`
	Count int        `json:"count"`
}

// maxListedDays caps the days array in PageOutput.
const maxListedDays = 62

var dateProperty = map[string]interface{}{
	"type":        "string",
	"description": "Date as YYYY-MM-DD (UTC midnight), RFC3339 timestamp, or one of now, today, yesterday, tomorrow. Example: '2019-02-06'",
}

func unitProperty(extra string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Calendar unit: millisecond, second, minute, hour, day, week, isoweek, month, quarter, year, isoweekyear, decade. " + extra,
	}
}

func (s *Server) registerTools() {
	s.registerShiftTool("add_date", "Add an amount of calendar units to a date. Month, quarter, year and decade steps clamp to the last day of the target month (Jan 31 + 1 month = Feb 28). Returns the resulting timestamp and its YYYY-MM-DD form.", s.handleAddDate)
	s.registerShiftTool("sub_date", "Subtract an amount of calendar units from a date, with the same clamping rules as add_date.", s.handleSubDate)
	s.registerBoundTool("start_of", "Return the first instant of the unit containing the date, e.g. the Sunday midnight that starts its week. Millisecond is not supported.", s.handleStartOf)
	s.registerBoundTool("end_of", "Return the last instant of the unit containing the date, e.g. 23:59:59.999999999 on the last day of its month. Millisecond is not supported.", s.handleEndOf)
	s.registerPageOpenTool()
	s.registerPageMoveTool("page_next", "Move a pager session forward. By default moves one whole page (multiplier x unit).", s.handlePageNext)
	s.registerPageMoveTool("page_prev", "Move a pager session backward. By default moves one whole page (multiplier x unit).", s.handlePagePrev)
	s.registerPageSetDateTool()
	s.registerPageCloseTool()
	s.registerListUnitsTool()
}

func (s *Server) registerShiftTool(name, description string, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)) {
	tool := mcp.Tool{
		Name:        name,
		Description: description,
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"date": dateProperty,
				"unit": unitProperty("A trailing 's' is accepted (days, weeks)."),
				"amount": map[string]interface{}{
					"type":        "integer",
					"description": "How many units to move (default: 1). Negative values move the other way.",
				},
			},
			Required: []string{"date", "unit"},
		},
	}
	s.mcpServer.AddTool(tool, handler)
}

func (s *Server) registerBoundTool(name, description string, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)) {
	tool := mcp.Tool{
		Name:        name,
		Description: description,
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"date": dateProperty,
				"unit": unitProperty("Singular names only."),
			},
			Required: []string{"date", "unit"},
		},
	}
	s.mcpServer.AddTool(tool, handler)
}

func (s *Server) registerPageOpenTool() {
	tool := mcp.Tool{
		Name:        "page_open",
		Description: "Open a pager session: a date range derived from a reference date, a unit, a multiplier and a direction. 'back' pages end with the unit containing the date; 'forward' pages start with it. Returns a session_id for page_next, page_prev, page_set_date and page_close.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"date": dateProperty,
				"unit": unitProperty("Singular names only; millisecond cannot be paged."),
				"multiplier": map[string]interface{}{
					"type":        "integer",
					"description": "How many units one page spans (default from config, usually 1)",
				},
				"direction": map[string]interface{}{
					"type":        "string",
					"description": "'back' or 'forward' (default from config, usually back)",
					"enum":        []string{"back", "forward"},
				},
			},
		},
	}
	s.mcpServer.AddTool(tool, s.handlePageOpen)
}

func (s *Server) registerPageMoveTool(name, description string, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)) {
	tool := mcp.Tool{
		Name:        name,
		Description: description,
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session id returned by page_open",
				},
				"how_many": map[string]interface{}{
					"type":        "integer",
					"description": "How many units to move; zero or less means the page multiplier (default)",
				},
				"unit": unitProperty("Defaults to the page unit. A trailing 's' is accepted."),
			},
			Required: []string{"session_id"},
		},
	}
	s.mcpServer.AddTool(tool, handler)
}

func (s *Server) registerPageSetDateTool() {
	tool := mcp.Tool{
		Name:        "page_set_date",
		Description: "Jump a pager session to the page containing a new reference date.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session id returned by page_open",
				},
				"date": dateProperty,
			},
			Required: []string{"session_id", "date"},
		},
	}
	s.mcpServer.AddTool(tool, s.handlePageSetDate)
}

func (s *Server) registerPageCloseTool() {
	tool := mcp.Tool{
		Name:        "page_close",
		Description: "Close a pager session and free its slot.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session id returned by page_open",
				},
			},
			Required: []string{"session_id"},
		},
	}
	s.mcpServer.AddTool(tool, s.handlePageClose)
}

func (s *Server) registerListUnitsTool() {
	tool := mcp.Tool{
		Name:        "list_units",
		Description: "List the supported calendar units and which operations accept them.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
	s.mcpServer.AddTool(tool, s.handleListUnits)
}

// Handler implementations

func (s *Server) handleAddDate(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.shift(req, calendar.Add)
}

func (s *Server) handleSubDate(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.shift(req, calendar.Sub)
}

func (s *Server) shift(req mcp.CallToolRequest, op func(time.Time, string, int) (time.Time, error)) (*mcp.CallToolResult, error) {
	var input ShiftInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	date, err := s.parseDate(input.Date)
	if err != nil {
		return nil, err
	}
	amount := 1
	if input.Amount != nil {
		amount = *input.Amount
	}

	result, err := op(date, input.Unit, amount)
	if err != nil {
		return nil, err
	}

	return jsonResult(DateOutput{
		Input:  input.Date,
		Unit:   input.Unit,
		Amount: &amount,
		Result: result,
		Date:   s.codec.Encode(result),
	})
}

func (s *Server) handleStartOf(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.bound(req, calendar.StartOf)
}

func (s *Server) handleEndOf(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.bound(req, calendar.EndOf)
}

func (s *Server) bound(req mcp.CallToolRequest, op func(time.Time, string, ...calendar.Option) (time.Time, error)) (*mcp.CallToolResult, error) {
	var input BoundInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	date, err := s.parseDate(input.Date)
	if err != nil {
		return nil, err
	}

	result, err := op(date, input.Unit, s.calendarOptions()...)
	if err != nil {
		return nil, err
	}

	return jsonResult(DateOutput{
		Input:  input.Date,
		Unit:   input.Unit,
		Result: result,
		Date:   s.codec.Encode(result),
	})
}

func (s *Server) handlePageOpen(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input PageOpenInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	date, err := s.parseDate(input.Date)
	if err != nil {
		return nil, err
	}

	opts := []paginate.Option{
		paginate.WithDate(date),
		paginate.WithUnit(s.opts.Unit),
		paginate.WithMultiplier(s.opts.Multiplier),
		paginate.WithDirection(s.opts.Direction),
		paginate.WithWeekStart(s.opts.WeekStart),
		paginate.WithClock(s.now),
	}
	if input.Unit != "" {
		opts = append(opts, paginate.WithUnit(input.Unit))
	}
	if input.Multiplier != nil {
		opts = append(opts, paginate.WithMultiplier(*input.Multiplier))
	}
	if input.Direction != nil {
		dir, err := paginate.ParseDirection(*input.Direction)
		if err != nil {
			return nil, err
		}
		opts = append(opts, paginate.WithDirection(dir))
	}

	id, p, err := s.openSession(opts...)
	if err != nil {
		return nil, err
	}

	out := s.pageOutput(p)
	out.SessionID = id
	return jsonResult(out)
}

func (s *Server) handlePageNext(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.move(req, (*paginate.Pager).Add)
}

func (s *Server) handlePagePrev(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.move(req, (*paginate.Pager).Sub)
}

func (s *Server) move(req mcp.CallToolRequest, op func(*paginate.Pager, int, string) error) (*mcp.CallToolResult, error) {
	var input PageMoveInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}
	howMany := 0
	if input.HowMany != nil {
		howMany = *input.HowMany
	}

	var out PageOutput
	err := s.withSession(input.SessionID, func(p *paginate.Pager) error {
		if err := op(p, howMany, input.Unit); err != nil {
			return err
		}
		out = s.pageOutput(p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	out.SessionID = input.SessionID
	return jsonResult(out)
}

func (s *Server) handlePageSetDate(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input PageSetDateInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}
	if input.Date == "" {
		return nil, fmt.Errorf("%w: date is required", calendar.ErrInvalidArgument)
	}

	date, err := s.parseDate(input.Date)
	if err != nil {
		return nil, err
	}

	var out PageOutput
	err = s.withSession(input.SessionID, func(p *paginate.Pager) error {
		if err := p.SetDate(date); err != nil {
			return err
		}
		out = s.pageOutput(p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	out.SessionID = input.SessionID
	return jsonResult(out)
}

func (s *Server) handlePageClose(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input PageCloseInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}
	if err := s.closeSession(input.SessionID); err != nil {
		return nil, err
	}
	return jsonResult(CloseOutput{Success: true, SessionID: input.SessionID})
}

func (s *Server) handleListUnits(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(listUnits())
}

func listUnits() ListUnitsOutput {
	units := calendar.Units()
	out := ListUnitsOutput{Units: make([]UnitInfo, 0, len(units)), Count: len(units)}
	for _, u := range units {
		out.Units = append(out.Units, UnitInfo{Name: u.String(), Arithmetic: true, Bounds: u.Bounded()})
	}
	return out
}

// pageOutput describes p's current page.
func (s *Server) pageOutput(p *paginate.Pager) PageOutput {
	st := p.State()
	iv := p.Interval()
	days := p.EachDay()

	out := PageOutput{
		Date:              s.codec.Encode(st.Date),
		Unit:              st.Unit.String(),
		Multiplier:        st.Multiplier,
		Direction:         st.Direction.String(),
		Start:             iv.Start,
		End:               iv.End,
		StartDate:         s.codec.Encode(iv.Start),
		EndDate:           s.codec.Encode(iv.End),
		DayCount:          len(days),
		IsCurrentInterval: p.IsCurrentInterval(),
	}
	if len(days) <= maxListedDays {
		out.Days = make([]string, 0, len(days))
		for _, d := range days {
			out.Days = append(out.Days, s.codec.Encode(d))
		}
	}
	return out
}

// parseDate parses a date argument and normalizes it to UTC.
func (s *Server) parseDate(text string) (time.Time, error) {
	t, err := timeutil.ParseDate(text, s.now())
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal output: %w", err)
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
