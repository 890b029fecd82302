package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"cpu-scheduling-simulator/config"
	"cpu-scheduling-simulator/internal/core"
	"cpu-scheduling-simulator/internal/requests"
	"cpu-scheduling-simulator/internal/schedulers"
)

type SchedulerHandler interface {
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobNext(ctx *fiber.Ctx) error
	ShortestRemainingTime(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Algorithms(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobinAlgorithm)
}

func (s *SchedulerHandlerImpl) ShortestJobNext(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobNextAlgorithm)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTime(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestRemainingTimeAlgorithm)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PriorityAlgorithm)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	set, request, err := parseRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	outcomes, err := schedulers.RunAll(set, request.Quantum(s.config.RoundRobinTimeQuantum), s.config.Parallel)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(schedulers.GenerateAllResponse(uuid.NewString(), outcomes))
}

func (s *SchedulerHandlerImpl) Algorithms(ctx *fiber.Ctx) error {
	algorithms := make([]fiber.Map, 0, len(schedulers.Available()))
	for _, algorithm := range schedulers.Available() {
		policy, err := schedulers.New(algorithm, s.config.RoundRobinTimeQuantum)
		if err != nil {
			return writeError(ctx, err)
		}
		algorithms = append(algorithms, fiber.Map{"algorithm": algorithm, "name": policy.Name()})
	}
	return ctx.JSON(fiber.Map{"algorithms": algorithms})
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	set, request, err := parseRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	policy, err := schedulers.New(algorithm, request.Quantum(s.config.RoundRobinTimeQuantum))
	if err != nil {
		return writeError(ctx, err)
	}
	outcome := schedulers.Run(policy, set)
	return ctx.JSON(schedulers.GenerateResponse(uuid.NewString(), outcome))
}

var errInvalidRequestFormat = errors.New("invalid request format")

func parseRequest(ctx *fiber.Ctx) (*core.ProcessSet, requests.ScheduleRequest, error) {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		log.Println("can not parse schedule request:", err)
		return nil, request, errInvalidRequestFormat
	}
	set, err := request.ProcessSet()
	if err != nil {
		return nil, request, err
	}
	return set, request, nil
}

func writeError(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, errInvalidRequestFormat),
		errors.Is(err, core.ErrInvalidInput),
		errors.Is(err, schedulers.ErrUnknownAlgorithm):
		status = fiber.StatusBadRequest
	}
	log.Println("schedule request rejected:", err)
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}
