// Package http exposes the atelier's REST API. Handlers translate requests
// into commands and queries, and map domain errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/bill"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"
)

// Server implements the REST API for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerActorHandler      commands.RegisterActorCommandHandler
	createOrderHandler        commands.CreateOrderCommandHandler
	updateOrderStatusHandler  commands.UpdateOrderStatusCommandHandler
	assignTailorHandler       commands.AssignTailorCommandHandler
	completeEmbroideryHandler commands.CompleteEmbroideryCommandHandler
	generateBillHandler       commands.GenerateBillCommandHandler
	recordPaymentHandler      commands.RecordPaymentCommandHandler
	refundPaymentHandler      commands.RefundPaymentCommandHandler

	// Query handlers
	getOrderHandler       queries.GetOrderQueryHandler
	getBillByOrderHandler queries.GetBillByOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerActorHandler commands.RegisterActorCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	assignTailorHandler commands.AssignTailorCommandHandler,
	completeEmbroideryHandler commands.CompleteEmbroideryCommandHandler,
	generateBillHandler commands.GenerateBillCommandHandler,
	recordPaymentHandler commands.RecordPaymentCommandHandler,
	refundPaymentHandler commands.RefundPaymentCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getBillByOrderHandler queries.GetBillByOrderQueryHandler,
) *Server {
	return &Server{
		registerActorHandler:      registerActorHandler,
		createOrderHandler:        createOrderHandler,
		updateOrderStatusHandler:  updateOrderStatusHandler,
		assignTailorHandler:       assignTailorHandler,
		completeEmbroideryHandler: completeEmbroideryHandler,
		generateBillHandler:       generateBillHandler,
		recordPaymentHandler:      recordPaymentHandler,
		refundPaymentHandler:      refundPaymentHandler,
		getOrderHandler:           getOrderHandler,
		getBillByOrderHandler:     getBillByOrderHandler,
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/actors", s.RegisterActor)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:orderId", s.GetOrder)
	api.POST("/orders/:orderId/status", s.UpdateOrderStatus)
	api.POST("/orders/:orderId/tailor", s.AssignTailor)
	api.POST("/orders/:orderId/embroidery/complete", s.CompleteEmbroidery)
	api.POST("/orders/:orderId/bill", s.GenerateBill)
	api.GET("/orders/:orderId/bill", s.GetBill)

	api.POST("/bills/:billId/payments", s.RecordPayment)
	api.DELETE("/bills/:billId/payments/:paymentId", s.RefundPayment)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
}

// RegisterActor handles POST /api/v1/actors - registers a customer or staff member.
func (s *Server) RegisterActor(ctx echo.Context) error {
	var request registerActorRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	role, err := actor.RoleFromString(request.Role)
	if err != nil {
		return badRequest(ctx, "Invalid actor data: "+err.Error())
	}

	actorID := kernel.NewUUID()
	cmd, err := commands.NewRegisterActorCommand(actorID, request.Name, role)
	if err != nil {
		return badRequest(ctx, "Invalid actor data: "+err.Error())
	}

	if handleErr := s.registerActorHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: actorID.String()})
}

// CreateOrder handles POST /api/v1/orders - places a new tailoring order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request createOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	fabric := commands.FabricInput{
		Source:   request.Fabric.Source,
		Quantity: request.Fabric.Quantity,
		Notes:    request.Fabric.Notes,
	}
	if request.Fabric.FabricID != "" {
		fabric.FabricID, err = kernel.UUIDFromString(request.Fabric.FabricID)
		if err != nil {
			return badRequest(ctx, "Invalid fabric id")
		}
	}

	items := make([]commands.LineItemInput, 0, len(request.Items))
	for _, item := range request.Items {
		items = append(items, commands.LineItemInput{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		customerID,
		items,
		fabric,
		request.Measurements,
		commands.CustomizationInput{
			Collar: request.Customization.Collar,
			Sleeve: request.Customization.Sleeve,
			Pocket: request.Customization.Pocket,
			Notes:  request.Customization.Notes,
		},
		commands.EmbroideryInput{
			Enabled:    request.Embroidery.Enabled,
			Type:       request.Embroidery.Type,
			Placements: request.Embroidery.Placements,
			Pattern:    request.Embroidery.Pattern,
			Colors:     request.Embroidery.Colors,
			Notes:      request.Embroidery.Notes,
		},
		request.Urgent,
		request.ExpectedDelivery,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:orderId - retrieves the full order view.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(view))
}

// UpdateOrderStatus handles POST /api/v1/orders/:orderId/status - moves the
// order through the production state machine.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request updateStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	newStatus, err := order.StatusFromString(request.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	role, err := actor.RoleFromString(request.Role)
	if err != nil {
		return badRequest(ctx, "Invalid role: "+err.Error())
	}

	actorID, err := kernel.UUIDFromString(request.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, newStatus, actorID, role, request.Force)
	if err != nil {
		return badRequest(ctx, "Invalid status change: "+err.Error())
	}

	if handleErr := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignTailor handles POST /api/v1/orders/:orderId/tailor - assigns a tailor.
func (s *Server) AssignTailor(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request assignTailorRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	tailorID, err := kernel.UUIDFromString(request.TailorID)
	if err != nil {
		return badRequest(ctx, "Invalid tailor id")
	}

	cmd, err := commands.NewAssignTailorCommand(orderID, tailorID)
	if err != nil {
		return badRequest(ctx, "Invalid assignment: "+err.Error())
	}

	if handleErr := s.assignTailorHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteEmbroidery handles POST /api/v1/orders/:orderId/embroidery/complete -
// marks the embroidery sub-workflow as done.
func (s *Server) CompleteEmbroidery(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCompleteEmbroideryCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	if handleErr := s.completeEmbroideryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GenerateBill handles POST /api/v1/orders/:orderId/bill - generates the bill
// for an order. The body names the intended payment method; gateway bills come
// back with a checkout session. Repeated calls return the existing bill.
func (s *Server) GenerateBill(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request generateBillRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if request.Method == "" {
		request.Method = bill.MethodCash.String()
	}

	method, err := bill.MethodFromString(request.Method)
	if err != nil {
		return badRequest(ctx, "Invalid payment method: "+err.Error())
	}

	cmd, err := commands.NewGenerateBillCommand(kernel.NewUUID(), orderID, method)
	if err != nil {
		return badRequest(ctx, "Invalid bill data: "+err.Error())
	}

	if handleErr := s.generateBillHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return s.respondWithBill(ctx, orderID, http.StatusCreated)
}

// GetBill handles GET /api/v1/orders/:orderId/bill - retrieves the bill summary.
func (s *Server) GetBill(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	return s.respondWithBill(ctx, orderID, http.StatusOK)
}

// RecordPayment handles POST /api/v1/bills/:billId/payments - records a
// payment against the bill. Gateway payments carry callback credentials and
// are verified before the ledger changes.
func (s *Server) RecordPayment(ctx echo.Context) error {
	billID, err := kernel.UUIDFromString(ctx.Param("billId"))
	if err != nil {
		return badRequest(ctx, "Invalid bill id")
	}

	var request recordPaymentRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	method, err := bill.MethodFromString(request.Method)
	if err != nil {
		return badRequest(ctx, "Invalid payment method: "+err.Error())
	}

	paymentID := kernel.NewUUID()
	cmd, err := commands.NewRecordPaymentCommand(
		paymentID,
		billID,
		request.Amount,
		method,
		request.ExternalOrderID,
		request.ExternalPaymentID,
		request.Signature,
	)
	if err != nil {
		return badRequest(ctx, "Invalid payment data: "+err.Error())
	}

	recordedID, handleErr := s.recordPaymentHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	// A replayed gateway callback answers with the payment already on the
	// ledger instead of minting a second id.
	if !recordedID.IsEqual(paymentID) {
		return ctx.JSON(http.StatusOK, createdResponse{ID: recordedID.String()})
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: recordedID.String()})
}

// RefundPayment handles DELETE /api/v1/bills/:billId/payments/:paymentId -
// removes a payment from the ledger. Admin only.
func (s *Server) RefundPayment(ctx echo.Context) error {
	billID, err := kernel.UUIDFromString(ctx.Param("billId"))
	if err != nil {
		return badRequest(ctx, "Invalid bill id")
	}

	paymentID, err := kernel.UUIDFromString(ctx.Param("paymentId"))
	if err != nil {
		return badRequest(ctx, "Invalid payment id")
	}

	var request refundPaymentRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	role, err := actor.RoleFromString(request.Role)
	if err != nil {
		return badRequest(ctx, "Invalid role: "+err.Error())
	}

	actorID, err := kernel.UUIDFromString(request.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id")
	}

	cmd, err := commands.NewRefundPaymentCommand(billID, paymentID, actorID, role)
	if err != nil {
		return badRequest(ctx, "Invalid refund: "+err.Error())
	}

	if handleErr := s.refundPaymentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) respondWithBill(ctx echo.Context, orderID kernel.UUID, status int) error {
	query, err := queries.NewGetBillByOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	summary, err := s.getBillByOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(status, toBillResponse(summary))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, apiError{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps a use case error onto its HTTP status. Security
// violations deliberately answer with a bare 403: signature internals never
// leave the server.
func errorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, apiError{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrConflict):
		return ctx.JSON(http.StatusConflict, apiError{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrSecurityViolation):
		return ctx.JSON(http.StatusForbidden, apiError{
			Code:    http.StatusForbidden,
			Message: "Forbidden",
		})
	case errors.Is(err, errs.ErrExternalUnavailable):
		return ctx.JSON(http.StatusServiceUnavailable, apiError{
			Code:    http.StatusServiceUnavailable,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, apiError{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, apiError{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

// apiError is the uniform JSON error body of the API.
type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type createdResponse struct {
	ID string `json:"id"`
}

type registerActorRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type createOrderRequest struct {
	CustomerID       string               `json:"customer_id"`
	Items            []lineItemRequest    `json:"items"`
	Fabric           fabricRequest        `json:"fabric"`
	Measurements     map[string]float64   `json:"measurements"`
	Customization    customizationRequest `json:"customization"`
	Embroidery       embroideryRequest    `json:"embroidery"`
	Urgent           bool                 `json:"urgent"`
	ExpectedDelivery time.Time            `json:"expected_delivery"`
}

type lineItemRequest struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

type fabricRequest struct {
	Source   string `json:"source"`
	FabricID string `json:"fabric_id"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes"`
}

type customizationRequest struct {
	Collar string `json:"collar"`
	Sleeve string `json:"sleeve"`
	Pocket string `json:"pocket"`
	Notes  string `json:"notes"`
}

type embroideryRequest struct {
	Enabled    bool     `json:"enabled"`
	Type       string   `json:"type"`
	Placements []string `json:"placements"`
	Pattern    string   `json:"pattern"`
	Colors     []string `json:"colors"`
	Notes      string   `json:"notes"`
}

type updateStatusRequest struct {
	Status  string `json:"status"`
	ActorID string `json:"actor_id"`
	Role    string `json:"role"`
	Force   bool   `json:"force"`
}

type assignTailorRequest struct {
	TailorID string `json:"tailor_id"`
}

type generateBillRequest struct {
	Method string `json:"method"`
}

type recordPaymentRequest struct {
	Amount            int64  `json:"amount"`
	Method            string `json:"method"`
	ExternalOrderID   string `json:"external_order_id"`
	ExternalPaymentID string `json:"external_payment_id"`
	Signature         string `json:"signature"`
}

type refundPaymentRequest struct {
	ActorID string `json:"actor_id"`
	Role    string `json:"role"`
}

type orderResponse struct {
	ID               string                 `json:"id"`
	CustomerID       string                 `json:"customer_id"`
	TailorID         string                 `json:"tailor_id,omitempty"`
	Status           string                 `json:"status"`
	Items            []orderItemResponse    `json:"items"`
	FabricSource     string                 `json:"fabric_source"`
	FabricName       string                 `json:"fabric_name,omitempty"`
	FabricQuantity   int                    `json:"fabric_quantity,omitempty"`
	Measurements     map[string]float64     `json:"measurements"`
	Customization    customizationRequest   `json:"customization"`
	Embroidery       embroideryResponse     `json:"embroidery"`
	Urgent           bool                   `json:"urgent"`
	Total            int64                  `json:"total"`
	ExpectedDelivery time.Time              `json:"expected_delivery"`
	Attachments      []string               `json:"attachments,omitempty"`
	StatusHistory    []statusChangeResponse `json:"status_history"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

type orderItemResponse struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	Subtotal  int64  `json:"subtotal"`
}

type embroideryResponse struct {
	Enabled    bool     `json:"enabled"`
	Type       string   `json:"type,omitempty"`
	Placements []string `json:"placements,omitempty"`
	Pattern    string   `json:"pattern,omitempty"`
	Colors     []string `json:"colors,omitempty"`
	Status     string   `json:"status,omitempty"`
	Cost       int64    `json:"cost,omitempty"`
}

type statusChangeResponse struct {
	From    string    `json:"from"`
	To      string    `json:"to"`
	ActorID string    `json:"actor_id"`
	Role    string    `json:"role"`
	Forced  bool      `json:"forced"`
	At      time.Time `json:"at"`
}

type billResponse struct {
	ID              string            `json:"id"`
	OrderID         string            `json:"order_id"`
	Amount          int64             `json:"amount"`
	AmountPaid      int64             `json:"amount_paid"`
	Outstanding     int64             `json:"outstanding"`
	Status          string            `json:"status"`
	ExternalOrderID string            `json:"external_order_id,omitempty"`
	CheckoutURL     string            `json:"checkout_url,omitempty"`
	Payments        []paymentResponse `json:"payments"`
	CreatedAt       time.Time         `json:"created_at"`
}

type paymentResponse struct {
	ID          string    `json:"id"`
	Amount      int64     `json:"amount"`
	Method      string    `json:"method"`
	ExternalRef string    `json:"external_ref,omitempty"`
	Verified    bool      `json:"verified"`
	RecordedAt  time.Time `json:"recorded_at"`
}

func toOrderResponse(view queries.GetOrderQueryResponse) orderResponse {
	response := orderResponse{
		ID:             view.ID.String(),
		CustomerID:     view.CustomerID.String(),
		Status:         view.Status,
		FabricSource:   view.FabricSource,
		FabricName:     view.FabricName,
		FabricQuantity: view.FabricQuantity,
		Measurements:   view.Measurements,
		Customization: customizationRequest{
			Collar: view.Customization.Collar,
			Sleeve: view.Customization.Sleeve,
			Pocket: view.Customization.Pocket,
			Notes:  view.Customization.Notes,
		},
		Embroidery: embroideryResponse{
			Enabled:    view.Embroidery.Enabled,
			Type:       view.Embroidery.Type,
			Placements: view.Embroidery.Placements,
			Pattern:    view.Embroidery.Pattern,
			Colors:     view.Embroidery.Colors,
			Status:     view.Embroidery.Status,
			Cost:       view.Embroidery.Cost,
		},
		Urgent:           view.Urgent,
		Total:            view.Total,
		ExpectedDelivery: view.ExpectedDelivery,
		Attachments:      view.Attachments,
		CreatedAt:        view.CreatedAt,
		UpdatedAt:        view.UpdatedAt,
	}

	if view.TailorID != nil {
		response.TailorID = view.TailorID.String()
	}

	response.Items = make([]orderItemResponse, 0, len(view.Items))
	for _, item := range view.Items {
		response.Items = append(response.Items, orderItemResponse{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		})
	}

	response.StatusHistory = make([]statusChangeResponse, 0, len(view.StatusHistory))
	for _, change := range view.StatusHistory {
		response.StatusHistory = append(response.StatusHistory, statusChangeResponse{
			From:    change.From,
			To:      change.To,
			ActorID: change.ActorID.String(),
			Role:    change.Role,
			Forced:  change.Forced,
			At:      change.At,
		})
	}

	return response
}

func toBillResponse(summary queries.GetBillByOrderQueryResponse) billResponse {
	response := billResponse{
		ID:              summary.BillID.String(),
		OrderID:         summary.OrderID.String(),
		Amount:          summary.Amount,
		AmountPaid:      summary.AmountPaid,
		Outstanding:     summary.Outstanding,
		Status:          summary.Status,
		ExternalOrderID: summary.ExternalOrderID,
		CheckoutURL:     summary.CheckoutURL,
		Payments:        make([]paymentResponse, 0, len(summary.Payments)),
		CreatedAt:       summary.CreatedAt,
	}

	for _, payment := range summary.Payments {
		response.Payments = append(response.Payments, paymentResponse{
			ID:          payment.ID.String(),
			Amount:      payment.Amount,
			Method:      payment.Method,
			ExternalRef: payment.ExternalRef,
			Verified:    payment.Verified,
			RecordedAt:  payment.RecordedAt,
		})
	}

	return response
}
