package handler

import (
	"context"

	"wishlist/internal/router"
	"wishlist/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	ctx        context.Context
	bot        *tele.Bot
	router     *router.Router
	users      *service.UserService
	wishes     *service.WishService
	broadcasts *service.BroadcastService
	membership *service.MembershipService
	messenger  service.Messenger
	logger     *zap.Logger
}

// NewHandler creates a new handler instance. ctx bounds long running work
// such as broadcast fan-out and is cancelled on shutdown.
func NewHandler(
	ctx context.Context,
	bot *tele.Bot,
	r *router.Router,
	users *service.UserService,
	wishes *service.WishService,
	broadcasts *service.BroadcastService,
	membership *service.MembershipService,
	messenger service.Messenger,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		ctx:        ctx,
		bot:        bot,
		router:     r,
		users:      users,
		wishes:     wishes,
		broadcasts: broadcasts,
		membership: membership,
		messenger:  messenger,
		logger:     logger,
	}
}

// RegisterHandlers registers the command table and all bot handlers
func (h *Handler) RegisterHandlers() {
	h.RegisterCommands()

	// Text and media go through one entry point: in relay and broadcast
	// states any supported kind is captured.
	for _, endpoint := range []string{
		tele.OnText,
		tele.OnPhoto,
		tele.OnVideo,
		tele.OnAnimation,
		tele.OnAudio,
		tele.OnVoice,
		tele.OnDocument,
		tele.OnSticker,
	} {
		h.bot.Handle(endpoint, h.handleMessage)
	}

	h.bot.Handle(tele.OnCallback, h.handleCallback)
	h.bot.Handle(tele.OnMyChatMember, h.handleMyChatMember)
}
