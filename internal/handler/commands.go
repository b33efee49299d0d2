package handler

import (
	"strings"

	"wishlist/internal/router"

	"go.uber.org/zap"
)

// RegisterCommands fills the router's command table
func (h *Handler) RegisterCommands() {
	h.router.Register("/start", h.handleStart)
	h.router.Register("/wishes", h.handleWishes)
	h.router.Register("/info", h.handleInfo)

	h.router.Register("/wish", h.adminOnly(h.handleAllWishes))
	h.router.Register("/poem", h.adminOnly(h.handlePoems))
	h.router.Register("/admin", h.adminOnly(h.handleAdmin))
	h.router.Register("/users", h.adminOnly(h.handleUsers))
	h.router.Register("/ban", h.adminOnly(h.moderate(h.users.Ban, msgBanned)))
	h.router.Register("/unban", h.adminOnly(h.moderate(h.users.Unban, msgUnbanned)))
	h.router.Register("/op", h.adminOnly(h.moderate(h.users.GrantAdmin, msgOpped)))
	h.router.Register("/deop", h.adminOnly(h.moderate(h.users.RevokeAdmin, msgDeopped)))
	h.router.Register("/talk", h.adminOnly(h.handleTalk))
	h.router.Register("/talkall", h.adminOnly(h.handleTalkAll))
}

// adminOnly refuses the command for non-administrators
func (h *Handler) adminOnly(next router.HandlerFunc) router.HandlerFunc {
	return func(req *router.Request) error {
		admin, err := h.users.IsAdmin(req.ChatID)
		if err != nil {
			return err
		}
		if !admin {
			h.logger.Info("Admin command refused",
				zap.Int64("chat_id", req.ChatID),
				zap.String("username", req.Handle),
				zap.String("command", req.Command),
			)
			return h.messenger.Send(req.ChatID, msgNoPermission)
		}
		return next(req)
	}
}

func (h *Handler) handleStart(req *router.Request) error {
	h.logger.Info("User started bot",
		zap.Int64("chat_id", req.ChatID),
		zap.String("username", req.Handle),
	)
	return h.settle(req.ChatID, "", h.wishes.Start(req.ChatID))
}

func (h *Handler) handleWishes(req *router.Request) error {
	return h.settle(req.ChatID, "", h.wishes.ShowWishes(req.ChatID))
}

func (h *Handler) handleInfo(req *router.Request) error {
	return h.messenger.Send(req.ChatID, msgInfo)
}

func (h *Handler) handleAllWishes(req *router.Request) error {
	return h.wishes.SendAllWishes(req.ChatID)
}

func (h *Handler) handlePoems(req *router.Request) error {
	return h.wishes.SendAllPoems(req.ChatID)
}

func (h *Handler) handleAdmin(req *router.Request) error {
	return h.messenger.Send(req.ChatID, msgAdminCommands)
}

func (h *Handler) handleUsers(req *router.Request) error {
	return h.users.SendUserList(req.ChatID)
}

func (h *Handler) handleTalk(req *router.Request) error {
	return h.settle(req.ChatID, "", h.broadcasts.BeginTalk(req.ChatID))
}

func (h *Handler) handleTalkAll(req *router.Request) error {
	return h.settle(req.ChatID, "", h.broadcasts.BeginBroadcast(req.ChatID))
}

// moderate builds a "/cmd @handle" command around a user service action
func (h *Handler) moderate(action func(handle string) error, done func(handle string) string) router.HandlerFunc {
	return func(req *router.Request) error {
		handle, ok := targetHandle(req.Args)
		if !ok {
			return h.messenger.Send(req.ChatID, msgUsage(req.Command))
		}
		if err := action(handle); err != nil {
			return h.settle(req.ChatID, handle, err)
		}
		return h.messenger.Send(req.ChatID, done(handle))
	}
}

// targetHandle accepts exactly one argument and strips a leading "@"
func targetHandle(args []string) (string, bool) {
	if len(args) != 1 {
		return "", false
	}
	handle := strings.TrimPrefix(args[0], "@")
	return handle, handle != ""
}
