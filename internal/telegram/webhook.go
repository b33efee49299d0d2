package telegram

import (
	"encoding/json"
	"net/http"
	"sync"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// SecretTokenHeader carries the webhook secret token on every update request
const SecretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

// Webhook is a telebot poller served by an external HTTP server. It registers
// the webhook on Poll and accepts updates only while the bot is polling;
// requests outside that window get 503 so the platform retries them.
type Webhook struct {
	params *tele.Webhook
	logger *zap.Logger

	mu   sync.RWMutex
	dest chan<- tele.Update
	done chan struct{}
}

var _ tele.Poller = (*Webhook)(nil)

// NewWebhook creates a webhook poller. params.Listen must stay empty.
func NewWebhook(params *tele.Webhook, logger *zap.Logger) *Webhook {
	return &Webhook{params: params, logger: logger}
}

// Poll registers the webhook and feeds updates to the bot until stop
func (w *Webhook) Poll(b *tele.Bot, dest chan tele.Update, stop chan struct{}) {
	if err := b.SetWebhook(w.params); err != nil {
		w.logger.Error("Failed to set webhook", zap.Error(err))
		return
	}
	w.logger.Info("Webhook registered", zap.String("url", w.params.Endpoint.PublicURL))

	w.attach(dest)
	<-stop
	w.detach()
}

func (w *Webhook) attach(dest chan<- tele.Update) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.dest = dest
	w.done = make(chan struct{})
}

func (w *Webhook) detach() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.done != nil {
		close(w.done)
	}
	w.dest = nil
	w.done = nil
}

// ServeHTTP accepts one update posted by the platform
func (w *Webhook) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(rw, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	if token := w.params.SecretToken; token != "" && r.Header.Get(SecretTokenHeader) != token {
		w.logger.Warn("Webhook request with invalid secret token", zap.String("remote", r.RemoteAddr))
		http.Error(rw, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}

	var update tele.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		w.logger.Warn("Failed to decode update", zap.Error(err))
		http.Error(rw, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	w.mu.RLock()
	dest, done := w.dest, w.done
	w.mu.RUnlock()

	if dest == nil {
		w.logger.Debug("Update refused, bot not polling", zap.Int("update_id", update.ID))
		http.Error(rw, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		return
	}

	select {
	case dest <- update:
	case <-done:
		http.Error(rw, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
	case <-r.Context().Done():
	}
}
