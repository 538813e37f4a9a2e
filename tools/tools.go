// Package tools maps the MCP tool surface onto the users service. Each
// tool validates its arguments, performs one service call and renders the
// result as an indented JSON envelope in the tool's text content. Failures
// are rendered as error envelopes, never as protocol errors.
package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/uservault/uservault/users"
)

const (
	msgInvalidID     = "User ID must be a positive integer"
	msgInvalidName   = "Name must be a non-empty string"
	msgInvalidEmail  = "Email must be a valid email address"
	msgInvalidLimit  = "Limit must be a positive integer"
	msgInvalidOffset = "Offset must not be negative"
)

type dispatcher struct {
	svc    *users.Service
	logger *zap.Logger
}

// Register adds the five user tools to the MCP server.
func Register(srv *server.MCPServer, svc *users.Service, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}

	d := &dispatcher{
		svc:    svc,
		logger: logger,
	}

	srv.AddTool(mcp.NewTool("create_user",
		mcp.WithDescription("Create a new user record with name and email"),
		mcp.WithString("name", mcp.Required(), mcp.Description("User's full name")),
		mcp.WithString("email", mcp.Required(), mcp.Description("User's email address")),
	), d.createUser)

	srv.AddTool(mcp.NewTool("read_user",
		mcp.WithDescription("Read a specific user by ID"),
		mcp.WithNumber("user_id", mcp.Required(), mcp.Description("The user's ID")),
	), d.readUser)

	srv.AddTool(mcp.NewTool("read_all_users",
		mcp.WithDescription("Read all users with pagination support"),
		mcp.WithNumber("limit", mcp.DefaultNumber(users.DefaultLimit),
			mcp.Description("Number of records to return (default: 100, max: 1000)")),
		mcp.WithNumber("offset", mcp.DefaultNumber(0),
			mcp.Description("Number of records to skip (default: 0)")),
	), d.readAllUsers)

	srv.AddTool(mcp.NewTool("update_user",
		mcp.WithDescription("Update an existing user's name and/or email"),
		mcp.WithNumber("user_id", mcp.Required(), mcp.Description("The user's ID")),
		mcp.WithString("name", mcp.Description("New name (optional)")),
		mcp.WithString("email", mcp.Description("New email (optional)")),
	), d.updateUser)

	srv.AddTool(mcp.NewTool("delete_user",
		mcp.WithDescription("Delete a user record by ID"),
		mcp.WithNumber("user_id", mcp.Required(), mcp.Description("The user's ID")),
	), d.deleteUser)
}

func (d *dispatcher) createUser(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log := d.invocationLogger("create_user")
	args := req.GetArguments()

	name, _, err := stringArg(args, "name", msgInvalidName)
	if err != nil {
		return d.fail(log, err, 0)
	}

	email, _, err := stringArg(args, "email", msgInvalidEmail)
	if err != nil {
		return d.fail(log, err, 0)
	}

	user, err := d.svc.Create(ctx, name, email)
	if err != nil {
		return d.fail(log, err, 0)
	}

	return d.ok(log, users.OK(user, "User created successfully"))
}

func (d *dispatcher) readUser(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log := d.invocationLogger("read_user")

	id, _, err := intArg(req.GetArguments(), "user_id", msgInvalidID)
	if err != nil {
		return d.fail(log, err, id)
	}

	user, err := d.svc.Get(ctx, id)
	if err != nil {
		return d.fail(log, err, id)
	}

	return d.ok(log, users.OK(user, ""))
}

func (d *dispatcher) readAllUsers(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log := d.invocationLogger("read_all_users")
	args := req.GetArguments()

	limit, present, err := intArg(args, "limit", msgInvalidLimit)
	if err != nil {
		return d.fail(log, err, 0)
	}

	if !present {
		limit = users.DefaultLimit
	}

	offset, present, err := intArg(args, "offset", msgInvalidOffset)
	if err != nil {
		return d.fail(log, err, 0)
	}

	if !present {
		offset = 0
	}

	items, page, err := d.svc.List(ctx, int(limit), int(offset))
	if err != nil {
		return d.fail(log, err, 0)
	}

	return d.ok(log, users.OKList(items, page))
}

func (d *dispatcher) updateUser(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log := d.invocationLogger("update_user")
	args := req.GetArguments()

	id, _, err := intArg(args, "user_id", msgInvalidID)
	if err != nil {
		return d.fail(log, err, id)
	}

	var fields users.UpdateFields

	name, present, err := stringArg(args, "name", msgInvalidName)
	if err != nil {
		return d.fail(log, err, id)
	}

	if present {
		fields.Name = &name
	}

	email, present, err := stringArg(args, "email", msgInvalidEmail)
	if err != nil {
		return d.fail(log, err, id)
	}

	if present {
		fields.Email = &email
	}

	user, err := d.svc.Update(ctx, id, fields)
	if err != nil {
		return d.fail(log, err, id)
	}

	return d.ok(log, users.OK(user, "User updated successfully"))
}

func (d *dispatcher) deleteUser(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log := d.invocationLogger("delete_user")

	id, _, err := intArg(req.GetArguments(), "user_id", msgInvalidID)
	if err != nil {
		return d.fail(log, err, id)
	}

	user, err := d.svc.Delete(ctx, id)
	if err != nil {
		return d.fail(log, err, id)
	}

	return d.ok(log, users.OK(user, fmt.Sprintf("User %d deleted successfully", id)))
}

func (d *dispatcher) invocationLogger(tool string) *zap.Logger {
	return d.logger.With(
		zap.String("tool", tool),
		zap.String("invocation_id", uuid.New().String()),
	)
}

func (d *dispatcher) ok(log *zap.Logger, env users.Envelope) (*mcp.CallToolResult, error) {
	out, err := env.Render()
	if err != nil {
		return nil, err
	}

	log.Debug("tool succeeded")

	return mcp.NewToolResultText(out), nil
}

func (d *dispatcher) fail(log *zap.Logger, err error, id int64) (*mcp.CallToolResult, error) {
	msg := errorMessage(err, id)

	log.Warn("tool failed", zap.Error(err))

	out, rerr := users.Fail(msg).Render()
	if rerr != nil {
		return nil, rerr
	}

	return mcp.NewToolResultText(out), nil
}

// errorMessage converts a domain error into the caller-facing string used
// in the error envelope.
func errorMessage(err error, id int64) string {
	switch {
	case errors.Is(err, users.ErrInvalidInput):
		return err.Error()
	case errors.Is(err, users.ErrAlreadyExists):
		return "Email already exists"
	case errors.Is(err, users.ErrNotFound):
		return fmt.Sprintf("User with ID %d not found", id)
	default:
		return "database error: " + err.Error()
	}
}
