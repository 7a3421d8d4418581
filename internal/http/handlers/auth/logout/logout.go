// Package logout реализует HTTP-обработчик выхода из системы.
//
// Токены сессии самодостаточны и не хранятся на сервере, списка отзыва
// нет, поэтому выход ничего не инвалидирует: выданный токен остаётся
// действительным до истечения срока. Обработчик существует только как
// подтверждение намерения клиента — известное ограничение системы,
// а не упущение.
package logout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/identity-service/internal/http/response"
)

// Handler обрабатывает HTTP-запросы выхода.
type Handler struct {
	log *slog.Logger
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP godoc
// @Summary Выход пользователя
// @Description Подтверждает выход. Токен при этом не отзывается и остаётся действительным до истечения срока.
// @Tags Auth
// @Produce  json
// @Success 200 {object} response.Response "Подтверждение выхода"
// @Router /logout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
	log.Info("logout acknowledged")

	render.JSON(w, r, response.OKWithMessage("Logged out successfully"))
}
