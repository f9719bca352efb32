package handler

import (
	"net/http"

	"github.com/Astemirdum/book-tracker/tracker/internal/model"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func pathUserID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "userId is invalid")
	}
	return id, nil
}

// Follow godoc
// @Summary  Follow another reader. Private profiles get a pending request
// @Tags     friends
// @Produce  json
// @Param    X-User-Name header string true "user id"
// @Param    userId path string true "user to follow"
// @Success  201 {object} model.Follow
// @Failure  400,404,409 {object} echo.HTTPError
// @Router   /friends/follow/{userId} [post]
func (h *Handler) Follow(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	target, err := pathUserID(c)
	if err != nil {
		return err
	}
	f, err := h.trackerSvc.Follow(c.Request().Context(), uid, target)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, f)
}

// Unfollow godoc
// @Summary  Stop following a reader or withdraw a pending request
// @Tags     friends
// @Param    X-User-Name header string true "user id"
// @Param    userId path string true "followed user"
// @Success  204
// @Failure  400,404 {object} echo.HTTPError
// @Router   /friends/unfollow/{userId} [post]
func (h *Handler) Unfollow(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	target, err := pathUserID(c)
	if err != nil {
		return err
	}
	if err := h.trackerSvc.Unfollow(c.Request().Context(), uid, target); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListFollowing godoc
// @Summary  Readers the user follows
// @Tags     friends
// @Produce  json
// @Param    X-User-Name header string true "user id"
// @Success  200 {array} model.Follow
// @Router   /friends [get]
func (h *Handler) ListFollowing(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	items, err := h.trackerSvc.ListFollowing(c.Request().Context(), uid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// ListPendingFollowers godoc
// @Summary  Follow requests waiting for the user's approval
// @Tags     friends
// @Produce  json
// @Param    X-User-Name header string true "user id"
// @Success  200 {array} model.Follow
// @Router   /friends/pending [get]
func (h *Handler) ListPendingFollowers(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	items, err := h.trackerSvc.ListPendingFollowers(c.Request().Context(), uid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// ApproveFollower godoc
// @Summary  Approve a pending follow request
// @Tags     friends
// @Param    X-User-Name header string true "user id"
// @Param    userId path string true "requesting follower"
// @Success  204
// @Failure  400,404 {object} echo.HTTPError
// @Router   /friends/approve/{userId} [post]
func (h *Handler) ApproveFollower(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	follower, err := pathUserID(c)
	if err != nil {
		return err
	}
	if err := h.trackerSvc.ApproveFollower(c.Request().Context(), uid, follower); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// SetPrivacy godoc
// @Summary  Choose whether new followers need approval
// @Tags     friends
// @Accept   json
// @Param    X-User-Name header string true "user id"
// @Param    input body model.PrivacyRequest true "privacy settings"
// @Success  204
// @Failure  400 {object} echo.HTTPError
// @Router   /privacy [put]
func (h *Handler) SetPrivacy(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	var req model.PrivacyRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	if err := h.trackerSvc.SetPrivacy(c.Request().Context(), uid, req); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
