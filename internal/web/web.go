package web

import (
	"errors"
	"strconv"

	authservice "github.com/assodanse/assoserver/auth/service"
	"github.com/assodanse/assoserver/auth/users"
	"github.com/assodanse/assoserver/internal/config"
	"github.com/assodanse/assoserver/internal/service"
	"github.com/assodanse/assoserver/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Server struct {
	auth *authservice.Service
	site *service.SiteService
	app  *fiber.App
	cfg  config.Server
	log  *logrus.Entry
}

const userKey = "user"

func New(site *service.SiteService, cfg config.Server, authService *authservice.Service, l *logrus.Logger) *Server {
	server := Server{
		site: site,
		auth: authService,
		cfg:  cfg,
		log:  l.WithField("from", "web"),
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: !cfg.Debug,
	})

	app.Use(webpath.Admin, func(c *fiber.Ctx) error {
		user, err := authService.Auth(c.Context(), c.Get(fiber.HeaderAuthorization), c.Method(), c.Path())
		if err != nil {
			return server.respondAuthError(c, err)
		}
		c.Context().SetUserValue(userKey, user)
		return c.Next()
	})

	app.Post(webpath.AdminLogin, server.handleLogin)
	app.Post(webpath.AdminLogout, server.handleLogout)
	app.Get(webpath.AdminProfile, server.handleProfile)
	app.Post(webpath.AdminRefreshToken, server.handleRefreshToken)
	app.Post(webpath.AdminChangePassword, server.handleChangePassword)
	app.Get(webpath.AdminDashboard, server.handleDashboard)
	app.Get(webpath.AdminEvents, server.handleAdminEvents)
	app.Post(webpath.AdminEvents, server.handleCreateEvent)
	app.Put(webpath.AdminEvent, server.handleUpdateEvent)
	app.Delete(webpath.AdminEvent, server.handleDeleteEvent)
	app.Get(webpath.AdminMessages, server.handleMessages)
	app.Put(webpath.AdminMessageRead, server.handleMarkMessageRead)
	app.Put(webpath.AdminInfo, server.handleUpdateInfo)

	app.Get(webpath.ApiEvents, server.handlePublicEvents)
	app.Get(webpath.ApiEvent, server.handlePublicEvent)
	app.Get(webpath.ApiInfo, server.handleInfo)
	app.Post(webpath.ApiContact, server.handleContact)

	server.app = app
	return &server
}

func (s *Server) Serve() error {
	return s.app.Listen(s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port))
}

func (s *Server) fail(ctx *fiber.Ctx, status int, msg string) error {
	return ctx.Status(status).JSON(response{Success: false, Message: msg})
}

func (s *Server) respondAuthError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, authservice.ErrForbidden):
		return s.fail(ctx, fiber.StatusForbidden, err.Error())
	case errors.Is(err, authservice.ErrMissingToken),
		errors.Is(err, authservice.ErrTokenInvalid),
		errors.Is(err, authservice.ErrTokenExpired),
		errors.Is(err, authservice.ErrUserDeactivated),
		errors.Is(err, authservice.ErrInvalidCredentials):
		return s.fail(ctx, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, authservice.ErrWeakPassword):
		return s.fail(ctx, fiber.StatusBadRequest, err.Error())
	default:
		s.log.WithError(err).Error("auth error")
		return s.fail(ctx, fiber.StatusInternalServerError, "service indisponible")
	}
}

func (s *Server) respondSiteError(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrNotFound) {
		return s.fail(ctx, fiber.StatusNotFound, err.Error())
	}
	s.log.WithError(err).Error("site error")
	return s.fail(ctx, fiber.StatusInternalServerError, "service indisponible")
}

func (s *Server) identity(ctx *fiber.Ctx) (users.User, bool) {
	user, ok := ctx.Context().UserValue(userKey).(users.User)
	if !ok || user.ID == uuid.Nil {
		return users.User{}, false
	}
	return user, true
}

func (s *Server) handleLogin(ctx *fiber.Ctx) error {
	var req loginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return s.fail(ctx, fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(); err != nil {
		return s.fail(ctx, fiber.StatusBadRequest, joinedMessage(err))
	}
	user, token, err := s.auth.Login(ctx.Context(), req.Email, req.Password)
	if err != nil {
		return s.respondAuthError(ctx, err)
	}
	return ctx.JSON(loginResponse{
		response: ack(),
		Token:    token,
		User:     convertUser(user),
	})
}

func (s *Server) handleLogout(ctx *fiber.Ctx) error {
	if err := s.auth.Logout(ctx.Context()); err != nil {
		return s.respondAuthError(ctx, err)
	}
	return ctx.JSON(ack())
}

func (s *Server) handleProfile(ctx *fiber.Ctx) error {
	identity, ok := s.identity(ctx)
	if !ok {
		return s.fail(ctx, fiber.StatusUnauthorized, authservice.ErrMissingToken.Error())
	}
	user, err := s.auth.Profile(ctx.Context(), identity.ID)
	if err != nil {
		return s.respondAuthError(ctx, err)
	}
	return ctx.JSON(profileResponse{
		response: ack(),
		User:     convertUser(user),
	})
}

// handleRefreshToken reads the bearer itself instead of relying on the guard:
// a token inside the refresh grace period is already expired and would never
// reach the handler otherwise.
func (s *Server) handleRefreshToken(ctx *fiber.Ctx) error {
	token, ok := authservice.BearerToken(ctx.Get(fiber.HeaderAuthorization))
	if !ok {
		return s.fail(ctx, fiber.StatusUnauthorized, authservice.ErrMissingToken.Error())
	}
	fresh, err := s.auth.Refresh(ctx.Context(), token)
	if err != nil {
		return s.respondAuthError(ctx, err)
	}
	return ctx.JSON(tokenResponse{
		response: ack(),
		Token:    fresh,
	})
}

func (s *Server) handleChangePassword(ctx *fiber.Ctx) error {
	identity, ok := s.identity(ctx)
	if !ok {
		return s.fail(ctx, fiber.StatusUnauthorized, authservice.ErrMissingToken.Error())
	}
	var req changePasswordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return s.fail(ctx, fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(); err != nil {
		return s.fail(ctx, fiber.StatusBadRequest, joinedMessage(err))
	}
	if err := s.auth.ChangePassword(ctx.Context(), identity.ID, req.OldPassword, req.NewPassword); err != nil {
		return s.respondAuthError(ctx, err)
	}
	return ctx.JSON(ack())
}

func (s *Server) handleDashboard(ctx *fiber.Ctx) error {
	stats, err := s.site.DashboardStats(ctx.Context())
	if err != nil {
		return s.respondSiteError(ctx, err)
	}
	return ctx.JSON(dashboardResponse{
		response: ack(),
		Stats: statsResponse{
			TotalEvents:    stats.TotalEvents,
			UpcomingEvents: stats.UpcomingEvents,
			UnreadMessages: stats.UnreadMessages,
		},
	})
}

func (s *Server) handleAdminEvents(ctx *fiber.Ctx) error {
	events, err := s.site.AllEvents(ctx.Context())
	if err != nil {
		return s.respondSiteError(ctx, err)
	}
	return ctx.JSON(eventsResponse{
		response: ack(),
		Events:   convertEvents(events),
	})
}

func (s *Server) handleCreateEvent(ctx *fiber.Ctx) error {
	var req eventRequest
	if err := ctx.BodyParser(&req); err != nil {
		return s.fail(ctx, fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(); err != nil {
		return s.fail(ctx, fiber.StatusBadRequest, joinedMessage(err))
	}
	event, err := s.site.CreateEvent(ctx.Context(), req.convertToDomainEvent(uuid.Nil))
	if err != nil {
		return s.respondSiteError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(eventPayloadResponse{
		response: ack(),
		Event:    convertEvent(event),
	})
}

func (s *Server) handleUpdateEvent(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return s.fail(ctx, fiber.StatusBadRequest, err.Error())
	}
	var req eventRequest
	if err := ctx.BodyParser(&req); err != nil {
		return s.fail(ctx, fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(); err != nil {
		return s.fail(ctx, fiber.StatusBadRequest, joinedMessage(err))
	}
	event, err := s.site.UpdateEvent(ctx.Context(), req.convertToDomainEvent(id))
	if err != nil {
		return s.respondSiteError(ctx, err)
	}
	return ctx.JSON(eventPayloadResponse{
		response: ack(),
		Event:    convertEvent(event),
	})
}

func (s *Server) handleDeleteEvent(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return s.fail(ctx, fiber.StatusBadRequest, err.Error())
	}
	if err := s.site.DeleteEvent(ctx.Context(), id); err != nil {
		return s.respondSiteError(ctx, err)
	}
	return ctx.JSON(ack())
}

func (s *Server) handleMessages(ctx *fiber.Ctx) error {
	msgs, err := s.site.Messages(ctx.Context())
	if err != nil {
		return s.respondSiteError(ctx, err)
	}
	return ctx.JSON(messagesResponse{
		response: ack(),
		Messages: convertMessages(msgs),
	})
}

func (s *Server) handleMarkMessageRead(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return s.fail(ctx, fiber.StatusBadRequest, err.Error())
	}
	if err := s.site.MarkMessageRead(ctx.Context(), id); err != nil {
		return s.respondSiteError(ctx, err)
	}
	return ctx.JSON(ack())
}

func (s *Server) handleUpdateInfo(ctx *fiber.Ctx) error {
	var req infoRequest
	if err := ctx.BodyParser(&req); err != nil {
		return s.fail(ctx, fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(); err != nil {
		return s.fail(ctx, fiber.StatusBadRequest, joinedMessage(err))
	}
	info, err := s.site.UpdateInfo(ctx.Context(), req.convertToDomainInfo())
	if err != nil {
		return s.respondSiteError(ctx, err)
	}
	return ctx.JSON(infoPayloadResponse{
		response: ack(),
		Info:     convertInfo(info),
	})
}

func (s *Server) handlePublicEvents(ctx *fiber.Ctx) error {
	events, err := s.site.PublishedEvents(ctx.Context(), ctx.Query("q"))
	if err != nil {
		return s.respondSiteError(ctx, err)
	}
	return ctx.JSON(eventsResponse{
		response: ack(),
		Events:   convertEvents(events),
	})
}

func (s *Server) handlePublicEvent(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return s.fail(ctx, fiber.StatusBadRequest, err.Error())
	}
	event, err := s.site.PublicEvent(ctx.Context(), id)
	if err != nil {
		return s.respondSiteError(ctx, err)
	}
	return ctx.JSON(eventPayloadResponse{
		response: ack(),
		Event:    convertEvent(event),
	})
}

func (s *Server) handleInfo(ctx *fiber.Ctx) error {
	info, err := s.site.Info(ctx.Context())
	if err != nil {
		return s.respondSiteError(ctx, err)
	}
	return ctx.JSON(infoPayloadResponse{
		response: ack(),
		Info:     convertInfo(info),
	})
}

func (s *Server) handleContact(ctx *fiber.Ctx) error {
	var req contactRequest
	if err := ctx.BodyParser(&req); err != nil {
		return s.fail(ctx, fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(); err != nil {
		return s.fail(ctx, fiber.StatusBadRequest, joinedMessage(err))
	}
	if _, err := s.site.SubmitContact(ctx.Context(), req.convertToDomainMessage()); err != nil {
		return s.respondSiteError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(ack())
}
