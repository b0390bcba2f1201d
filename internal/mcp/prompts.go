// ABOUTME: MCP prompt definitions and handlers
// ABOUTME: Provides workflow templates for planning and reviewing date ranges

package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/datepage/internal/calendar"
	"github.com/harper/datepage/internal/paginate"
)

func (s *Server) registerPrompts() {
	s.mcpServer.AddPrompt(
		mcp.Prompt{
			Name:        "plan_week",
			Description: "Plan the week containing a date, one day at a time, using the pager tools to get exact day boundaries",
			Arguments: []mcp.PromptArgument{
				{
					Name:        "date",
					Description: "Any date in the week to plan (default: today)",
					Required:    false,
				},
				{
					Name:        "week_start",
					Description: "'sunday' or 'monday' style week (default: configured week start)",
					Required:    false,
				},
			},
		},
		s.handlePlanWeek,
	)
	s.mcpServer.AddPrompt(
		mcp.Prompt{
			Name:        "review_period",
			Description: "Review the last few pages of a unit (weeks, months, quarters) walking backward from a date",
			Arguments: []mcp.PromptArgument{
				{
					Name:        "unit",
					Description: "Unit to review, e.g. week, month, quarter (default: month)",
					Required:    false,
				},
				{
					Name:        "pages",
					Description: "How many pages to walk back (default: 3)",
					Required:    false,
				},
			},
		},
		s.handleReviewPeriod,
	)
}

func (s *Server) handlePlanWeek(_ context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	date := "today"
	unit := calendar.Week.String()
	if d := req.Params.Arguments["date"]; d != "" {
		date = d
	}
	if ws := req.Params.Arguments["week_start"]; ws == "monday" || ws == "mon" {
		unit = calendar.ISOWeek.String()
	}

	t, err := s.parseDate(date)
	if err != nil {
		return nil, err
	}
	p, err := paginate.New(
		paginate.WithDate(t),
		paginate.WithUnit(unit),
		paginate.WithWeekStart(s.opts.WeekStart),
		paginate.WithClock(s.now),
	)
	if err != nil {
		return nil, err
	}
	page := s.pageOutput(p)

	template := fmt.Sprintf(`# Plan the Week

## Overview
Build a day-by-day plan for the week of %s (%s through %s).

## Workflow
1. Call page_open with date=%q, unit=%q, direction="forward" to get a session and the seven days.
2. For each day in the "days" list, draft goals and time blocks.
3. Use add_date / sub_date for relative deadlines ("3 days before the end of the week").
4. Use end_of with unit="day" when you need an exact cutoff timestamp.
5. Call page_next to preview the following week if work spills over.
6. Call page_close when done.

## Output
A table with one row per day: date, focus, tasks, deadline notes.
`, page.Date, page.StartDate, page.EndDate, date, unit)

	return &mcp.GetPromptResult{
		Description: "Weekly planning workflow",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.TextContent{
					Type: "text",
					Text: template,
				},
			},
		},
	}, nil
}

func (s *Server) handleReviewPeriod(_ context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	unit := calendar.Month.String()
	pages := "3"
	if u := req.Params.Arguments["unit"]; u != "" {
		parsed, err := calendar.ParseUnit(u)
		if err != nil {
			return nil, err
		}
		unit = parsed.String()
	}
	if n := req.Params.Arguments["pages"]; n != "" {
		pages = n
	}

	template := fmt.Sprintf(`# Review Recent Periods

## Overview
Walk backward through the last %s %s pages and summarize each one.

## Workflow
1. Call page_open with unit=%q, direction="back" (date defaults to today).
2. Summarize the returned start_date..end_date range.
3. Call page_prev and repeat until %s pages are covered.
4. Compare the periods and call out trends.
5. Call page_close when done.
`, pages, unit, unit, pages)

	return &mcp.GetPromptResult{
		Description: "Backward review workflow over recent pages",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.TextContent{
					Type: "text",
					Text: template,
				},
			},
		},
	}, nil
}
