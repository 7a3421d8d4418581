// Package userinfo реализует HTTP-обработчик, возвращающий данные
// аутентифицированного пользователя. Uid берётся из контекста запроса,
// куда его кладёт JWT middleware, остальные поля — из хранилища.
package userinfo

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/identity-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/identity-service/internal/http/response"
	"github.com/magabrotheeeer/identity-service/internal/lib/sl"
	"github.com/magabrotheeeer/identity-service/internal/models"
	"github.com/magabrotheeeer/identity-service/internal/storage/repository"
)

// UserProvider описывает контракт получения пользователя по UID.
type UserProvider interface {
	GetUserByUID(ctx context.Context, userUID string) (*models.User, error)
}

// Handler обрабатывает HTTP-запросы данных текущего пользователя.
type Handler struct {
	log   *slog.Logger
	users UserProvider
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, users UserProvider) *Handler {
	return &Handler{log: log, users: users}
}

// ServeHTTP godoc
// @Summary Данные текущего пользователя
// @Description Возвращает uid, username, email и fullName аутентифицированного пользователя.
// @Tags Auth
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} response.Response "Данные пользователя"
// @Failure 401 {object} response.ErrorResponse "Отсутствует или невалиден токен"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /me [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.userinfo"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	uid, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || uid == "" {
		log.Error("user uid missing in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("missing or invalid authorization header"))
		return
	}

	user, err := h.users.GetUserByUID(r.Context(), uid)
	if errors.Is(err, repository.ErrUserNotFound) {
		log.Error("user from token not found", slog.String("uid", uid))
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("invalid or expired token"))
		return
	}
	if err != nil {
		log.Error("failed to load user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to load user"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"uid":      user.UID,
		"username": user.Username,
		"email":    user.Email,
		"fullName": user.FullName,
	}))
}
