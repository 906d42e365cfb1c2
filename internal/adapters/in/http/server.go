// Package http exposes the production scheduling API over echo. Handlers
// translate JSON payloads into commands and queries, and domain errors
// into HTTP status codes; no business decision lives here.
package http

import (
	"errors"
	"net/http"
	"time"

	"produzione/internal/core/application/usecases/commands"
	"produzione/internal/core/application/usecases/queries"
	"produzione/internal/core/domain/model/kernel"
	"produzione/internal/core/domain/model/order"
	"produzione/internal/core/domain/model/planning"
	"produzione/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server implements the HTTP handlers for the scheduling API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	recordProcessingHandler  commands.RecordProcessingCommandHandler
	savePlanningHandler      commands.SavePlanningCommandHandler
	forceRescheduleHandler   commands.ForceRescheduleCommandHandler
	removeOrderHandler       commands.RemoveOrderCommandHandler

	// Query handlers
	getPlanningDataHandler queries.GetPlanningDataQueryHandler
	checkTodayHandler      queries.CheckTodayQueryHandler
	calculateHoursHandler  queries.CalculateHoursQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	recordProcessingHandler commands.RecordProcessingCommandHandler,
	savePlanningHandler commands.SavePlanningCommandHandler,
	forceRescheduleHandler commands.ForceRescheduleCommandHandler,
	removeOrderHandler commands.RemoveOrderCommandHandler,
	getPlanningDataHandler queries.GetPlanningDataQueryHandler,
	checkTodayHandler queries.CheckTodayQueryHandler,
	calculateHoursHandler queries.CalculateHoursQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		recordProcessingHandler:  recordProcessingHandler,
		savePlanningHandler:      savePlanningHandler,
		forceRescheduleHandler:   forceRescheduleHandler,
		removeOrderHandler:       removeOrderHandler,
		getPlanningDataHandler:   getPlanningDataHandler,
		checkTodayHandler:        checkTodayHandler,
		calculateHoursHandler:    calculateHoursHandler,
	}
}

// RegisterRoutes mounts every API endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/planning/data", s.GetPlanningData)
	api.POST("/planning/save", s.SavePlanning)
	api.POST("/planning/calculate-hours", s.CalculateHours)
	api.POST("/planning/check-today", s.CheckToday)
	api.POST("/planning/force-reschedule", s.ForceReschedule)

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/status", s.ChangeOrderStatus)
	api.POST("/orders/:id/processing", s.RecordProcessing)
	api.DELETE("/orders/:id", s.RemoveOrder)
}

// ErrorResponse is the uniform error payload of the API.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ConflictDetail describes one over-committed slot of a rejected plan.
type ConflictDetail struct {
	Date       string   `json:"date"`
	WorkLineID string   `json:"workLineId"`
	Holders    []string `json:"holders"`
}

// ConflictResponse is the payload of a rejected non-forced plan save.
type ConflictResponse struct {
	Code      int              `json:"code"`
	Message   string           `json:"message"`
	Conflicts []ConflictDetail `json:"conflicts"`
}

// GetPlanningDataRequest selects the inclusive date window of the board.
type GetPlanningDataRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// CreateOrderRequest is the payload for registering a production order.
type CreateOrderRequest struct {
	ArticleID    string `json:"articleId"`
	Quantity     int    `json:"quantity"`
	DeliveryDate string `json:"deliveryDate"`
	StartDate    string `json:"startDate"`
	LineNumber   int    `json:"lineNumber"`
}

// ChangeOrderStatusRequest is the payload for a lifecycle transition.
type ChangeOrderStatusRequest struct {
	Status      string `json:"status"`
	Motivazione string `json:"motivazione"`
}

// RecordProcessingRequest is the payload for a work-log declaration.
type RecordProcessingRequest struct {
	EmployeeID string    `json:"employeeId"`
	Quantity   int       `json:"quantity"`
	RecordedAt time.Time `json:"recordedAt"`
}

// PlanningCellRequest is one grid cell of a plan save.
type PlanningCellRequest struct {
	WorkLineID string `json:"workLineId"`
	Date       string `json:"date"`
	Morning    string `json:"morning"`
	Afternoon  string `json:"afternoon"`
	Night      string `json:"night"`
}

// SavePlanningRequest is the payload for replacing an order's schedule.
// An empty cell list clears it.
type SavePlanningRequest struct {
	OrderID string                `json:"orderId"`
	Force   bool                  `json:"force"`
	Cells   []PlanningCellRequest `json:"cells"`
}

// ForceRescheduleRequest is the payload for an automatic forced respread.
type ForceRescheduleRequest struct {
	OrderID    string `json:"orderId"`
	WorkLineID string `json:"workLineId"`
	StartDate  string `json:"startDate"`
	Note       string `json:"note"`
}

// CalculateHoursRequest is the payload for a quantity-to-hours conversion.
type CalculateHoursRequest struct {
	ArticleID  string `json:"articleId"`
	WorkLineID string `json:"workLineId"`
	Quantity   int    `json:"quantity"`
}

// CheckTodayRequest is the payload for a single-slot capacity probe.
type CheckTodayRequest struct {
	Date            string `json:"date"`
	WorkLineID      string `json:"workLineId"`
	AdditionalHours string `json:"additionalHours"`
}

// GetPlanningData handles POST /api/v1/planning/data - loads the board
// for the inclusive date window.
func (s *Server) GetPlanningData(ctx echo.Context) error {
	var request GetPlanningDataRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	from, err := kernel.DateFromString(request.From)
	if err != nil {
		return badRequest(ctx, "invalid from date: "+err.Error())
	}
	to, err := kernel.DateFromString(request.To)
	if err != nil {
		return badRequest(ctx, "invalid to date: "+err.Error())
	}

	query, err := queries.NewGetPlanningDataQuery(from, to)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	response, err := s.getPlanningDataHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, planningDataPayload(response))
}

// SavePlanning handles POST /api/v1/planning/save - replaces an order's
// schedule, rejecting capacity conflicts unless forced.
func (s *Server) SavePlanning(ctx echo.Context) error {
	var request SavePlanningRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID, err := kernel.UUIDFromString(request.OrderID)
	if err != nil {
		return badRequest(ctx, "invalid order id: "+err.Error())
	}

	cells := make([]commands.PlanningCell, 0, len(request.Cells))
	for _, cellRequest := range request.Cells {
		cell, cellErr := planningCellFromRequest(cellRequest)
		if cellErr != nil {
			return badRequest(ctx, cellErr.Error())
		}
		cells = append(cells, cell)
	}

	cmd, err := commands.NewSavePlanningCommand(orderID, cells, request.Force)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.savePlanningHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CalculateHours handles POST /api/v1/planning/calculate-hours - converts
// a quantity into production hours at the effective throughput rate.
func (s *Server) CalculateHours(ctx echo.Context) error {
	var request CalculateHoursRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	articleID, err := kernel.UUIDFromString(request.ArticleID)
	if err != nil {
		return badRequest(ctx, "invalid article id: "+err.Error())
	}
	workLineID, err := kernel.UUIDFromString(request.WorkLineID)
	if err != nil {
		return badRequest(ctx, "invalid work line id: "+err.Error())
	}

	query, err := queries.NewCalculateHoursQuery(articleID, workLineID, request.Quantity)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	response, err := s.calculateHoursHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{
		"hours": response.Hours.String(),
		"rate":  response.Rate.String(),
	})
}

// CheckToday handles POST /api/v1/planning/check-today - probes one
// (date, work line) slot for a capacity conflict.
func (s *Server) CheckToday(ctx echo.Context) error {
	var request CheckTodayRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	date, err := kernel.DateFromString(request.Date)
	if err != nil {
		return badRequest(ctx, "invalid date: "+err.Error())
	}
	workLineID, err := kernel.UUIDFromString(request.WorkLineID)
	if err != nil {
		return badRequest(ctx, "invalid work line id: "+err.Error())
	}
	additionalHours, err := decimal.NewFromString(request.AdditionalHours)
	if err != nil {
		return badRequest(ctx, "invalid additional hours: "+err.Error())
	}

	query, err := queries.NewCheckTodayQuery(date, workLineID, additionalHours)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	response, err := s.checkTodayHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	holders := make([]string, 0, len(response.Holders))
	for _, holder := range response.Holders {
		holders = append(holders, holder.String())
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"conflict":  response.Conflict,
		"committed": response.Committed.String(),
		"capacity":  response.Capacity.String(),
		"holders":   holders,
	})
}

// ForceReschedule handles POST /api/v1/planning/force-reschedule -
// respreads an order's remaining quantity from a new start date,
// overriding capacity.
func (s *Server) ForceReschedule(ctx echo.Context) error {
	var request ForceRescheduleRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID, err := kernel.UUIDFromString(request.OrderID)
	if err != nil {
		return badRequest(ctx, "invalid order id: "+err.Error())
	}
	workLineID, err := kernel.UUIDFromString(request.WorkLineID)
	if err != nil {
		return badRequest(ctx, "invalid work line id: "+err.Error())
	}
	startDate, err := kernel.DateFromString(request.StartDate)
	if err != nil {
		return badRequest(ctx, "invalid start date: "+err.Error())
	}

	cmd, err := commands.NewForceRescheduleCommand(orderID, workLineID, startDate, request.Note)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.forceRescheduleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateOrder handles POST /api/v1/orders - registers a production order.
// The production number is issued server-side and returned in the body.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	articleID, err := kernel.UUIDFromString(request.ArticleID)
	if err != nil {
		return badRequest(ctx, "invalid article id: "+err.Error())
	}
	deliveryDate, err := kernel.DateFromString(request.DeliveryDate)
	if err != nil {
		return badRequest(ctx, "invalid delivery date: "+err.Error())
	}
	startDate, err := kernel.DateFromString(request.StartDate)
	if err != nil {
		return badRequest(ctx, "invalid start date: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, articleID, request.Quantity, deliveryDate, startDate, request.LineNumber)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// ChangeOrderStatus handles POST /api/v1/orders/:id/status - moves an
// order through its lifecycle.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id: "+err.Error())
	}

	var request ChangeOrderStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	target, err := order.StatusFromString(request.Status)
	if err != nil {
		return badRequest(ctx, "invalid status: "+err.Error())
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target, request.Motivazione)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordProcessing handles POST /api/v1/orders/:id/processing - declares
// worked quantity against an order.
func (s *Server) RecordProcessing(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id: "+err.Error())
	}

	var request RecordProcessingRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	employeeID, err := kernel.UUIDFromString(request.EmployeeID)
	if err != nil {
		return badRequest(ctx, "invalid employee id: "+err.Error())
	}

	recordedAt := request.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now().UTC()
	}

	processingID := kernel.NewUUID()
	cmd, err := commands.NewRecordProcessingCommand(
		processingID, orderID, employeeID, request.Quantity, recordedAt)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.recordProcessingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": processingID.String()})
}

// RemoveOrder handles DELETE /api/v1/orders/:id - logically removes an
// order. The row is kept for audit and its production number stays
// reserved.
func (s *Server) RemoveOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id: "+err.Error())
	}

	cmd, err := commands.NewRemoveOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.removeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func planningCellFromRequest(request PlanningCellRequest) (commands.PlanningCell, error) {
	workLineID, err := kernel.UUIDFromString(request.WorkLineID)
	if err != nil {
		return commands.PlanningCell{}, err
	}
	date, err := kernel.DateFromString(request.Date)
	if err != nil {
		return commands.PlanningCell{}, err
	}

	morning, err := decimal.NewFromString(emptyAsZero(request.Morning))
	if err != nil {
		return commands.PlanningCell{}, err
	}
	afternoon, err := decimal.NewFromString(emptyAsZero(request.Afternoon))
	if err != nil {
		return commands.PlanningCell{}, err
	}
	night, err := decimal.NewFromString(emptyAsZero(request.Night))
	if err != nil {
		return commands.PlanningCell{}, err
	}

	hours, err := planning.NewHours(morning, afternoon, night)
	if err != nil {
		return commands.PlanningCell{}, err
	}

	return commands.PlanningCell{
		WorkLineID: workLineID,
		Date:       date,
		Hours:      hours,
	}, nil
}

func emptyAsZero(value string) string {
	if value == "" {
		return "0"
	}
	return value
}

func planningDataPayload(response queries.GetPlanningDataQueryResponse) map[string]any {
	orders := make([]map[string]any, 0, len(response.Orders))
	for _, planningOrder := range response.Orders {
		orders = append(orders, map[string]any{
			"id":               planningOrder.ID.String(),
			"productionNumber": planningOrder.ProductionNumber,
			"articleId":        planningOrder.ArticleID.String(),
			"quantity":         planningOrder.Quantity,
			"workedQuantity":   planningOrder.WorkedQuantity,
			"deliveryDate":     planningOrder.DeliveryDate.String(),
			"startDate":        planningOrder.StartDate.String(),
			"status":           planningOrder.Status,
			"motivazione":      planningOrder.Motivazione,
		})
	}

	cells := make([]map[string]any, 0, len(response.Cells))
	for _, cell := range response.Cells {
		cells = append(cells, map[string]any{
			"orderId":    cell.OrderID.String(),
			"workLineId": cell.WorkLineID.String(),
			"date":       cell.Date.String(),
			"morning":    cell.Morning.String(),
			"afternoon":  cell.Afternoon.String(),
			"night":      cell.Night.String(),
			"forced":     cell.Forced,
		})
	}

	summaries := make([]map[string]any, 0, len(response.Summaries))
	for _, summary := range response.Summaries {
		summaries = append(summaries, map[string]any{
			"date":  summary.Date.String(),
			"type":  summary.Type,
			"hours": summary.Hours.String(),
		})
	}

	return map[string]any{
		"orders":    orders,
		"cells":     cells,
		"summaries": summaries,
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// mapError translates domain errors into HTTP status codes. Scheduling
// conflicts carry their per-slot details so the client can offer the
// forced override.
func mapError(ctx echo.Context, err error) error {
	var conflictErr *errs.SchedulingConflictError
	if errors.As(err, &conflictErr) {
		details := make([]ConflictDetail, 0, len(conflictErr.Details))
		for _, detail := range conflictErr.Details {
			details = append(details, ConflictDetail{
				Date:       detail.Date,
				WorkLineID: detail.WorkLine,
				Holders:    append([]string(nil), detail.Orders...),
			})
		}
		return ctx.JSON(http.StatusConflict, ConflictResponse{
			Code:      http.StatusConflict,
			Message:   "plan exceeds capacity",
			Conflicts: details,
		})
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err)
	case errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, errs.ErrStateTransitionInvalid):
		return errorJSON(ctx, http.StatusConflict, err)
	case errors.Is(err, errs.ErrContention):
		return errorJSON(ctx, http.StatusServiceUnavailable, err)
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, order.ErrOrderDoesNotAcceptProcessing),
		errors.Is(err, order.ErrOrderIsRemoved),
		errors.Is(err, commands.ErrOrderIsNotSchedulable):
		return errorJSON(ctx, http.StatusBadRequest, err)
	default:
		return errorJSON(ctx, http.StatusInternalServerError, err)
	}
}

func errorJSON(ctx echo.Context, code int, err error) error {
	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
