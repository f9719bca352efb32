package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Astemirdum/book-tracker/pkg/auth"
	md "github.com/Astemirdum/book-tracker/pkg/middleware"
	"github.com/Astemirdum/book-tracker/pkg/validate"
	_ "github.com/Astemirdum/book-tracker/tracker/docs"
	"github.com/Astemirdum/book-tracker/tracker/internal/errs"
	"github.com/Astemirdum/book-tracker/tracker/internal/model"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	trackerSvc TrackerService
	log        *zap.Logger
}

func New(trackerSvc TrackerService, log *zap.Logger) *Handler {
	return &Handler{
		trackerSvc: trackerSvc,
		log:        log,
	}
}

// @title       Book Tracker API
// @version     1.0
// @description Reading progress, achievements and notifications.
// @BasePath    /api/v1
func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
		md.AuthContext,
	)

	api.POST("/books", h.AddBook)
	api.PUT("/books/:bookId/status", h.ChangeStatus)
	api.PUT("/books/review/:userBookId", h.AddReview)

	api.POST("/login", h.RecordLogin)
	api.GET("/stats", h.GetStats)

	api.GET("/achievements", h.ListAchievements)
	api.GET("/achievements/unlocked", h.ListUnlocked)
	api.GET("/achievements/progress", h.AchievementProgress)

	api.GET("/notifications", h.ListNotifications)
	api.POST("/notifications/:id/read", h.MarkNotificationRead)

	api.GET("/feed", h.ListFeed)

	api.POST("/friends/follow/:userId", h.Follow)
	api.POST("/friends/unfollow/:userId", h.Unfollow)
	api.GET("/friends", h.ListFollowing)
	api.GET("/friends/pending", h.ListPendingFollowers)
	api.POST("/friends/approve/:userId", h.ApproveFollower)
	api.PUT("/privacy", h.SetPrivacy)
	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps tracker errors onto status codes. Unknown errors are 500.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrInvalidStatus),
		errors.Is(err, errs.ErrInvalidRating),
		errors.Is(err, errs.ErrReviewTooLong),
		errors.Is(err, errs.ErrFollowSelf):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, errs.ErrNotFound.Error())
	case errors.Is(err, errs.ErrBookNotFound),
		errors.Is(err, errs.ErrNotificationNotFound),
		errors.Is(err, errs.ErrUserNotFound),
		errors.Is(err, errs.ErrFollowNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrAlreadyInLibrary),
		errors.Is(err, errs.ErrAlreadyFollowing):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrUnavailable),
		errors.Is(err, context.DeadlineExceeded):
		return echo.NewHTTPError(http.StatusServiceUnavailable, errs.ErrUnavailable.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func userID(c echo.Context) (uuid.UUID, error) {
	id, err := auth.GetUserID(c.Request().Context())
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, errs.ErrUserName.Error())
	}
	return id, nil
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" is invalid")
	}
	return id, nil
}

func bindValid(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// ChangeStatus godoc
// @Summary  Change reading status of a book in the user's library
// @Tags     books
// @Accept   json
// @Produce  json
// @Param    X-User-Name header string true "user id"
// @Param    bookId path int true "book id"
// @Param    input body model.ChangeStatusRequest true "Unread, Reading or Read"
// @Success  200 {object} model.ChangeStatusResponse
// @Failure  400,404,503 {object} echo.HTTPError
// @Router   /books/{bookId}/status [put]
func (h *Handler) ChangeStatus(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	bookID, err := pathID(c, "bookId")
	if err != nil {
		return err
	}
	var req model.ChangeStatusRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	resp, err := h.trackerSvc.ChangeStatus(c.Request().Context(), uid, bookID, req.Status)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

// AddReview godoc
// @Summary  Review a book from the user's library
// @Tags     books
// @Accept   json
// @Produce  json
// @Param    X-User-Name header string true "user id"
// @Param    userBookId path int true "ownership record id"
// @Param    input body model.ReviewRequest true "review; an omitted rating keeps the stored one"
// @Success  200 {object} model.UserBook
// @Failure  400,404 {object} echo.HTTPError
// @Router   /books/review/{userBookId} [put]
func (h *Handler) AddReview(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	userBookID, err := pathID(c, "userBookId")
	if err != nil {
		return err
	}
	var req model.ReviewRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	ub, err := h.trackerSvc.AddReview(c.Request().Context(), uid, userBookID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, ub)
}

// AddBook godoc
// @Summary  Add a catalog book to the user's library
// @Tags     books
// @Accept   json
// @Produce  json
// @Param    X-User-Name header string true "user id"
// @Param    input body model.AddBookRequest true "book"
// @Success  201 {object} model.AddBookResponse
// @Failure  400,404,409 {object} echo.HTTPError
// @Router   /books [post]
func (h *Handler) AddBook(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	var req model.AddBookRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	resp, err := h.trackerSvc.AddBook(c.Request().Context(), uid, req.BookID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// RecordLogin godoc
// @Summary  Record today's login and update the streak
// @Tags     users
// @Produce  json
// @Param    X-User-Name header string true "user id"
// @Success  200 {object} model.LoginResponse
// @Router   /login [post]
func (h *Handler) RecordLogin(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	resp, err := h.trackerSvc.RecordLogin(c.Request().Context(), uid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetStats godoc
// @Summary  Reading ledger of the user
// @Tags     users
// @Produce  json
// @Param    X-User-Name header string true "user id"
// @Success  200 {object} model.Stats
// @Router   /stats [get]
func (h *Handler) GetStats(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	stats, err := h.trackerSvc.GetStats(c.Request().Context(), uid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

// ListAchievements godoc
// @Summary  Achievement catalog
// @Tags     achievements
// @Produce  json
// @Success  200 {array} model.Achievement
// @Router   /achievements [get]
func (h *Handler) ListAchievements(c echo.Context) error {
	items, err := h.trackerSvc.ListAchievements(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// ListUnlocked godoc
// @Summary  Achievements the user has earned
// @Tags     achievements
// @Produce  json
// @Param    X-User-Name header string true "user id"
// @Success  200 {array} model.UnlockedAchievement
// @Router   /achievements/unlocked [get]
func (h *Handler) ListUnlocked(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	items, err := h.trackerSvc.ListUnlocked(c.Request().Context(), uid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// AchievementProgress godoc
// @Summary  Progress towards every achievement
// @Tags     achievements
// @Produce  json
// @Param    X-User-Name header string true "user id"
// @Success  200 {array} model.AchievementProgress
// @Router   /achievements/progress [get]
func (h *Handler) AchievementProgress(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	items, err := h.trackerSvc.AchievementProgress(c.Request().Context(), uid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// ListNotifications godoc
// @Summary  Latest notifications, newest first
// @Tags     notifications
// @Produce  json
// @Param    X-User-Name header string true "user id"
// @Success  200 {array} model.Notification
// @Router   /notifications [get]
func (h *Handler) ListNotifications(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	items, err := h.trackerSvc.ListNotifications(c.Request().Context(), uid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// MarkNotificationRead godoc
// @Summary  Mark a notification as read
// @Tags     notifications
// @Param    X-User-Name header string true "user id"
// @Param    id path string true "notification id"
// @Success  204
// @Failure  400,404 {object} echo.HTTPError
// @Router   /notifications/{id}/read [post]
func (h *Handler) MarkNotificationRead(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id is invalid")
	}
	if err := h.trackerSvc.MarkNotificationRead(c.Request().Context(), uid, id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListFeed godoc
// @Summary  Reading-activity feed of the user and the people they follow
// @Tags     feed
// @Produce  json
// @Param    X-User-Name header string true "user id"
// @Param    cursor query string false "nextCursor of the previous page"
// @Param    limit query int false "page size, at most 25"
// @Success  200 {object} model.FeedPage
// @Failure  400 {object} echo.HTTPError
// @Router   /feed [get]
func (h *Handler) ListFeed(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	var (
		after *model.FeedCursor
		limit int
	)
	if raw := c.QueryParam("cursor"); raw != "" {
		cursor, err := model.ParseFeedCursor(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "cursor is invalid")
		}
		after = &cursor
	}
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit is invalid")
		}
		limit = n
	}
	page, err := h.trackerSvc.ListFeed(c.Request().Context(), uid, after, limit)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, page)
}
