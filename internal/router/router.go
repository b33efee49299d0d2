package router

import (
	"fmt"
	"runtime/debug"
	"sort"
	"strings"

	"wishlist/internal/domain"
	"wishlist/internal/repository"

	"go.uber.org/zap"
)

const msgCommandFailed = "⚠️ Ошибка выполнения команды."

// Request is the input of a command handler
type Request struct {
	ChatID  int64
	Handle  string
	Text    string
	Command string
	Args    []string
}

// HandlerFunc executes one slash command
type HandlerFunc func(req *Request) error

// TextHandler continues the conversation with text that is not a known command
type TextHandler interface {
	HandleText(chatID int64, handle, text string) error
}

// Notifier reports command failures back to the user
type Notifier interface {
	Send(chatID int64, text string) error
}

// Router dispatches slash commands through a static table and hands
// everything else to the conversation state machine.
type Router struct {
	commands map[string]HandlerFunc
	fallback TextHandler
	logs     repository.CommandLogRepository
	notifier Notifier
	logger   *zap.Logger
}

// New creates a router with an empty command table
func New(
	logs repository.CommandLogRepository,
	fallback TextHandler,
	notifier Notifier,
	logger *zap.Logger,
) *Router {
	return &Router{
		commands: make(map[string]HandlerFunc),
		fallback: fallback,
		logs:     logs,
		notifier: notifier,
		logger:   logger,
	}
}

// Register binds a command token such as "/start" to a handler
func (r *Router) Register(command string, h HandlerFunc) {
	r.commands[strings.ToLower(command)] = h
}

// Commands returns the registered command tokens in order
func (r *Router) Commands() []string {
	out := make([]string, 0, len(r.commands))
	for cmd := range r.commands {
		out = append(out, cmd)
	}
	sort.Strings(out)
	return out
}

// Dispatch executes the command named by the first token of text, or
// passes text to the fallback when no command matches. Command failures
// never propagate: they are logged and reported to the user.
func (r *Router) Dispatch(chatID int64, handle, text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	command, args := extractCommand(text)
	h, ok := r.commands[command]
	if !ok {
		return r.fallback.HandleText(chatID, handle, text)
	}

	r.logCommand(chatID, handle, text)

	req := &Request{
		ChatID:  chatID,
		Handle:  handle,
		Text:    text,
		Command: command,
		Args:    args,
	}
	if err := r.execute(h, req); err != nil {
		r.logger.Error("Command execution error",
			zap.String("command", command),
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		if err := r.notifier.Send(chatID, msgCommandFailed); err != nil {
			r.logger.Warn("Failed to report command error", zap.Int64("chat_id", chatID), zap.Error(err))
		}
	}
	return nil
}

func (r *Router) execute(h HandlerFunc, req *Request) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("Command panic recovered",
				zap.String("command", req.Command),
				zap.Any("panic", rec),
				zap.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("panic in %s: %v", req.Command, rec)
		}
	}()
	return h(req)
}

func (r *Router) logCommand(chatID int64, handle, text string) {
	if handle == "" {
		handle = "unknown"
	}
	entry := domain.CommandLogEntry{
		UserID:  chatID,
		Handle:  handle,
		Command: text,
	}
	if err := r.logs.Append(entry); err != nil {
		r.logger.Error("Failed to log command", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

// extractCommand returns the lowercased first token and the remaining
// arguments. A "@botname" suffix on the token is dropped.
func extractCommand(text string) (string, []string) {
	fields := strings.Fields(text)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return "", nil
	}
	command := strings.ToLower(fields[0])
	if i := strings.Index(command, "@"); i > 0 {
		command = command[:i]
	}
	return command, fields[1:]
}
