package web

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/goserg/powerrank/internal/config"
	"github.com/goserg/powerrank/internal/service"
	"github.com/goserg/powerrank/internal/trend"
	"github.com/goserg/powerrank/internal/web/webpath"
	"github.com/goserg/powerrank/internal/weights"
)

type Server struct {
	service *service.Service
	app     *fiber.App
	cfg     config.Server
	log     *logrus.Entry
}

func New(svc *service.Service, cfg config.Server, log *logrus.Logger) *Server {
	server := Server{
		service: svc,
		cfg:     cfg,
		log:     log.WithField("from", "web"),
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: !cfg.Debug,
		ErrorHandler:          server.handleError,
		BodyLimit:             16 * 1024 * 1024,
	})
	app.Get(webpath.Health, func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "ok"})
	})
	app.Get(webpath.Api, func(ctx *fiber.Ctx) error {
		return ctx.JSON(webpath.Path())
	})
	app.Get(webpath.ApiGroups, server.handleGroups)
	app.Get(webpath.ApiGroup, server.handleGroup)
	app.Get(webpath.ApiTeamMatches, server.handleTeamMatches)
	app.Get(webpath.ApiOverall, server.handleOverall)
	app.Get(webpath.ApiOverallElo, server.handleOverallElo)
	app.Get(webpath.ApiCompare, server.handleCompare)
	app.Get(webpath.ApiEnhanced, server.handleEnhanced)
	app.Get(webpath.ApiTrend, server.handleTrend)
	app.Post(webpath.ApiWeights, server.handleWeights)
	app.Get(webpath.ApiRecommend, server.handleRecommend)
	app.Get(webpath.ApiSnapshot, server.handleSnapshot)
	app.Get(webpath.ApiSnapshots, server.handleSnapshots)
	app.Get(webpath.ApiExport, server.handleExport)
	app.Post(webpath.ApiImport, server.requireToken, server.handleImport)
	server.app = app
	return &server
}

func (s *Server) Serve() error {
	return s.app.Listen(s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port))
}

func (s *Server) Shutdown() error {
	return s.app.ShutdownWithTimeout(5 * time.Second)
}

// App exposes the router for in-process requests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) handleError(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		code = fe.Code
	case errors.Is(err, ErrUnauthorized):
		code = fiber.StatusUnauthorized
	case errors.Is(err, service.ErrNoData):
		code = fiber.StatusServiceUnavailable
	case errors.Is(err, service.ErrUnknownGroup), errors.Is(err, service.ErrUnknownTeam):
		code = fiber.StatusNotFound
	case errors.Is(err, service.ErrBadExportVersion), errors.Is(err, service.ErrBadImport), errors.Is(err, errBadRequest):
		code = fiber.StatusBadRequest
	}
	if code >= fiber.StatusInternalServerError {
		s.log.WithError(err).WithFields(logrus.Fields{
			"method": ctx.Method(),
			"path":   ctx.Path(),
		}).Error("request failed")
	}
	return ctx.Status(code).JSON(newErrorResponse(err))
}

var errBadRequest = errors.New("bad request")

func badRequest(err error) error {
	return errors.Join(errBadRequest, err)
}

func (s *Server) handleGroups(ctx *fiber.Ctx) error {
	groups, err := s.service.Groups()
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"groups": groups})
}

func (s *Server) handleGroup(ctx *fiber.Ctx) error {
	table, err := s.service.Group(ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(table)
}

func (s *Server) handleTeamMatches(ctx *fiber.Ctx) error {
	teamID := ctx.Params("team")
	matches, err := s.service.TeamMatches(ctx.Params("id"), teamID)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"group":   service.NormalizeGroupID(ctx.Params("id")),
		"teamId":  teamID,
		"count":   len(matches),
		"matches": matches,
	})
}

func (s *Server) handleOverall(ctx *fiber.Ctx) error {
	teams, err := s.service.Overall()
	if err != nil {
		return err
	}
	snapshot, err := s.service.Snapshot()
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"updatedAt": snapshot.CreatedAt,
		"teams":     teams,
	})
}

func (s *Server) handleOverallElo(ctx *fiber.Ctx) error {
	ratings, err := s.service.OverallElo()
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"teams": ratings})
}

func (s *Server) handleCompare(ctx *fiber.Ctx) error {
	rows, err := s.service.Compare()
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"rows": rows})
}

func (s *Server) handleEnhanced(ctx *fiber.Ctx) error {
	q := newEnhancedQuery(s.service.EnhancedDefaults())
	if err := ctx.QueryParser(&q); err != nil {
		return badRequest(err)
	}
	cfg, err := q.config()
	if err != nil {
		return badRequest(err)
	}
	results, err := s.service.Enhanced(cfg)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"config":  cfg,
		"results": results,
	})
}

func (s *Server) handleTrend(ctx *fiber.Ctx) error {
	metric, err := trend.ParseMetric(ctx.Query("metric"))
	if err != nil {
		return badRequest(err)
	}
	series, err := s.service.Trend(ctx.Params("team"), metric)
	if err != nil {
		return err
	}
	return ctx.JSON(series)
}

func (s *Server) handleWeights(ctx *fiber.Ctx) error {
	var req rebalanceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(err)
	}
	if err := validateStruct(req); err != nil {
		return badRequest(err)
	}
	defaults := s.service.EnhancedDefaults()
	current := weights.Weights{Off: defaults.WeightOff, Def: defaults.WeightDef, Dom: defaults.WeightDom}
	if req.Weights != nil {
		current = *req.Weights
	}
	w, err := s.service.Rebalance(req.Key, req.Value, current)
	if err != nil {
		return badRequest(err)
	}
	return ctx.JSON(rebalanceResponse{Weights: w, Sum: w.Sum()})
}

func (s *Server) handleRecommend(ctx *fiber.Ctx) error {
	groups := ctx.QueryInt("groups", 0)
	if groups < 0 {
		return badRequest(errors.New("groups must not be negative"))
	}
	result, err := s.service.Recommend(groups)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"groupCount": len(result),
		"groups":     result,
	})
}

func (s *Server) handleSnapshot(ctx *fiber.Ctx) error {
	snapshot, err := s.service.Snapshot()
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"id":        snapshot.ID,
		"createdAt": snapshot.CreatedAt,
		"groups":    len(snapshot.Groups),
	})
}

func (s *Server) handleSnapshots(ctx *fiber.Ctx) error {
	snapshots, err := s.service.Snapshots(ctx.UserContext())
	if err != nil {
		return err
	}
	list := make([]fiber.Map, 0, len(snapshots))
	for _, snapshot := range snapshots {
		list = append(list, fiber.Map{
			"id":        snapshot.ID,
			"createdAt": snapshot.CreatedAt,
		})
	}
	return ctx.JSON(fiber.Map{"snapshots": list})
}

func (s *Server) handleExport(ctx *fiber.Ctx) error {
	data, err := s.service.Export()
	if err != nil {
		return err
	}
	ctx.Attachment("powerrank.json")
	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return ctx.Send(data)
}

func (s *Server) handleImport(ctx *fiber.Ctx) error {
	snapshot, err := s.service.Import(ctx.UserContext(), ctx.Body())
	if err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{
		"snapshot": snapshot.ID,
		"subject":  ctx.Locals(subjectKey),
	}).Info("snapshot imported")
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":        snapshot.ID,
		"createdAt": snapshot.CreatedAt,
		"groups":    len(snapshot.Groups),
	})
}
