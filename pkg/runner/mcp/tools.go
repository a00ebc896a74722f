package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/lumiere/pkg/entry"
	"tableflip.dev/lumiere/pkg/mood"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerCreateEntryTool(srv, svc)
	registerUpdateEntryTool(srv, svc)
	registerDeleteEntryTool(srv, svc)
	registerListEntriesTool(srv, svc)
	registerSearchEntriesTool(srv, svc)
	registerGetEntryTool(srv, svc)
	registerMonthOverviewTool(srv, svc)
}

func registerCreateEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"create_entry",
		mcp.WithDescription("Create a new journal entry."),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("Body text of the entry."),
		),
		mcp.WithString("title",
			mcp.Description("Optional entry title."),
		),
		mcp.WithString("mood",
			mcp.Description("Mood recorded with the entry."),
			mcp.Enum("neutral", "happy", "calm", "sad", "anxious", "excited", "grateful"),
		),
		mcp.WithString("tags",
			mcp.Description("Optional comma separated tags."),
		),
		mcp.WithString("reminder",
			mcp.Description("Optional RFC3339 timestamp for a reminder."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Content  string `json:"content"`
			Title    string `json:"title"`
			Mood     string `json:"mood"`
			Tags     string `json:"tags"`
			Reminder string `json:"reminder"`
		}

		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		m := mood.Neutral
		if strings.TrimSpace(args.Mood) != "" {
			parsed, err := mood.ParseStrict(args.Mood)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			m = parsed
		}

		var reminder *time.Time
		if strings.TrimSpace(args.Reminder) != "" {
			when, err := entry.ParseTime(args.Reminder)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("invalid reminder value: %v", err)), nil
			}
			reminder = &when
		}

		dto, err := svc.CreateEntry(ctx, CreateEntryOptions{
			Title:    args.Title,
			Content:  args.Content,
			Mood:     m,
			Tags:     splitTags(args.Tags),
			Reminder: reminder,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return toJSONResult(dto)
	})
}

func registerUpdateEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"update_entry",
		mcp.WithDescription("Update fields of an existing entry. Omitted fields are left as stored."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier to modify."),
		),
		mcp.WithString("title",
			mcp.Description("Replacement title."),
		),
		mcp.WithString("content",
			mcp.Description("Replacement body text."),
		),
		mcp.WithString("mood",
			mcp.Description("Replacement mood."),
			mcp.Enum("neutral", "happy", "calm", "sad", "anxious", "excited", "grateful"),
		),
		mcp.WithString("tags",
			mcp.Description("Replacement comma separated tags."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		opts := UpdateEntryOptions{ID: id}

		args := request.GetArguments()
		if raw, ok := args["title"].(string); ok {
			opts.Title = &raw
		}
		if raw, ok := args["content"].(string); ok {
			opts.Content = &raw
		}
		if raw, ok := args["mood"].(string); ok {
			parsed, err := mood.ParseStrict(raw)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			opts.Mood = &parsed
		}
		if raw, ok := args["tags"].(string); ok {
			tags := splitTags(raw)
			opts.Tags = &tags
		}

		dto, err := svc.UpdateEntry(ctx, opts)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerDeleteEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_entry",
		mcp.WithDescription("Delete an entry by identifier."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier to delete."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if err := svc.DeleteEntry(ctx, id); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"id":      id,
			"deleted": true,
		})
	})
}

func registerListEntriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_entries",
		mcp.WithDescription("List journal entries newest first."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of entries to return (default 20)."),
			mcp.Min(1),
			mcp.Max(100),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit := request.GetInt("limit", 20)

		results, err := svc.ListEntries(ctx, "", limit)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"entries": results,
			"count":   len(results),
		})
	})
}

func registerSearchEntriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"search_entries",
		mcp.WithDescription("Search entries by substring match across titles, content, and tags."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Case-insensitive search text."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of entries to return (default 20)."),
			mcp.Min(1),
			mcp.Max(100),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		limit := request.GetInt("limit", 20)

		results, err := svc.ListEntries(ctx, query, limit)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"query":   query,
			"limit":   limit,
			"results": results,
			"count":   len(results),
		})
	})
}

func registerGetEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_entry",
		mcp.WithDescription("Fetch a single entry by identifier."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier to fetch."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.EntryByID(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerMonthOverviewTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"month_overview",
		mcp.WithDescription("Summarize which days of a month have entries."),
		mcp.WithNumber("year",
			mcp.Required(),
			mcp.Description("Calendar year, for example 2025."),
		),
		mcp.WithNumber("month",
			mcp.Required(),
			mcp.Description("Calendar month, 1 through 12."),
			mcp.Min(1),
			mcp.Max(12),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		year, err := request.RequireInt("year")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		month, err := request.RequireInt("month")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if month < 1 || month > 12 {
			return mcp.NewToolResultError(fmt.Sprintf("invalid month %d", month)), nil
		}

		days, err := svc.MonthOverview(ctx, year, time.Month(month))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"year":  year,
			"month": month,
			"days":  days,
			"count": len(days),
		})
	})
}

func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
