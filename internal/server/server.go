// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it creates the planner and injects it
// into the tools, prompts, and resources that depend on it. No business
// logic lives here — only wiring.
package server

import (
	"fmt"
	"log/slog"

	"planfiles/internal/config"
	"planfiles/internal/planner"
	"planfiles/internal/prompts"
	"planfiles/internal/resources"
	"planfiles/internal/tools"

	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, prompts,
// and resources registered. Settings are resolved by the caller and
// passed in — the server never reads configuration itself.
func New(settings config.Settings, log *slog.Logger) (*server.MCPServer, error) {
	p, err := planner.New(planner.Config{
		Dir:          settings.PlanningDir,
		MaxReadChars: settings.MaxReadChars,
	})
	if err != nil {
		return nil, fmt.Errorf("creating planner: %w", err)
	}

	log.Info("planning server configured",
		"dir", settings.PlanningDir,
		"max_read_chars", settings.MaxReadChars,
		"status_resource", settings.StatusResource)

	s := server.NewMCPServer(
		"planfiles",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register planning tools ---

	createTool := tools.NewCreatePlanTool(p)
	s.AddTool(createTool.Definition(), createTool.Handle)

	readPlanTool := tools.NewReadPlanTool(p)
	s.AddTool(readPlanTool.Definition(), readPlanTool.Handle)

	updateTool := tools.NewUpdatePlanTool(p)
	s.AddTool(updateTool.Definition(), updateTool.Handle)

	markTool := tools.NewMarkCompleteTool(p)
	s.AddTool(markTool.Definition(), markTool.Handle)

	addTodoTool := tools.NewAddTodoTool(p)
	s.AddTool(addTodoTool.Definition(), addTodoTool.Handle)

	findingTool := tools.NewSaveFindingTool(p)
	s.AddTool(findingTool.Definition(), findingTool.Handle)

	readFindingsTool := tools.NewReadFindingsTool(p)
	s.AddTool(readFindingsTool.Definition(), readFindingsTool.Handle)

	progressTool := tools.NewLogProgressTool(p)
	s.AddTool(progressTool.Definition(), progressTool.Handle)

	errorTool := tools.NewLogErrorTool(p)
	s.AddTool(errorTool.Definition(), errorTool.Handle)

	statusTool := tools.NewStatusTool(p)
	s.AddTool(statusTool.Definition(), statusTool.Handle)

	integrityTool := tools.NewIntegrityTool(p)
	s.AddTool(integrityTool.Definition(), integrityTool.Handle)

	cleanupTool := tools.NewCleanupTool(p)
	s.AddTool(cleanupTool.Definition(), cleanupTool.Handle)

	// --- Register prompts ---

	methodologyPrompt := prompts.NewMethodologyPrompt()
	s.AddPrompt(methodologyPrompt.Definition(), methodologyPrompt.Handle)

	statusPrompt := prompts.NewStatusPrompt()
	s.AddPrompt(statusPrompt.Definition(), statusPrompt.Handle)

	// --- Register resources ---
	//
	// The status resource is the pull-based monitor surface: hosts poll
	// it to render progress. It can be disabled for hosts that only
	// want the tools.

	if settings.StatusResource {
		resourceHandler := resources.NewHandler(p)
		s.AddResource(resourceHandler.StatusResource(), resourceHandler.HandleStatus)
	}

	return s, nil
}

// serverInstructions describes the planning workflow to the host model.
func serverInstructions() string {
	return `planfiles maintains three persistent markdown documents as durable
working memory for long-running tasks: task_plan.md (objective, phased
checklist, decisions, error log), findings.md (categorized research
notes), and progress.md (timestamped session log).

Start complex tasks with create_plan. Keep the checklist current with
add_todo and mark_complete, store research with save_finding, and log
every error with log_error so failures are never repeated. Use
get_planning_status to see where you are and check_plan_integrity
before declaring a task done. cleanup_plan removes the documents when
the task is finished.`
}
