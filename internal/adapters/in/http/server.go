package http

import (
	"net/http"
	"strconv"

	"backoffice/internal/core/application/auth"
	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/request"
	"backoffice/internal/core/domain/model/shipper"
	"backoffice/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	policy auth.Policy
	tokens TokenManager
	users  ports.UserRepository
	clock  ports.Clock

	// Command handlers
	createBillsHandler    commands.CreateBillsCommandHandler
	exchangeBillHandler   commands.ExchangeBillCommandHandler
	markTransferHandler   commands.MarkTransferCommandHandler
	submitRequestHandler  commands.SubmitRequestCommandHandler
	resolveRequestHandler commands.ResolveRequestCommandHandler
	createShipperHandler  commands.CreateShipperCommandHandler

	// Query handlers
	searchBillsHandler         queries.SearchBillsQueryHandler
	listShipperBillsHandler    queries.ListShipperBillsQueryHandler
	listRequestsHandler        queries.ListRequestsQueryHandler
	listRequestsForDateHandler queries.ListRequestsForDateQueryHandler
	listUsersHandler           queries.ListUsersQueryHandler
}

// NewServer creates an HTTP server with the required use case handlers.
func NewServer(
	policy auth.Policy,
	tokens TokenManager,
	users ports.UserRepository,
	clock ports.Clock,
	createBillsHandler commands.CreateBillsCommandHandler,
	exchangeBillHandler commands.ExchangeBillCommandHandler,
	markTransferHandler commands.MarkTransferCommandHandler,
	submitRequestHandler commands.SubmitRequestCommandHandler,
	resolveRequestHandler commands.ResolveRequestCommandHandler,
	createShipperHandler commands.CreateShipperCommandHandler,
	searchBillsHandler queries.SearchBillsQueryHandler,
	listShipperBillsHandler queries.ListShipperBillsQueryHandler,
	listRequestsHandler queries.ListRequestsQueryHandler,
	listRequestsForDateHandler queries.ListRequestsForDateQueryHandler,
	listUsersHandler queries.ListUsersQueryHandler,
) *Server {
	return &Server{
		policy:                     policy,
		tokens:                     tokens,
		users:                      users,
		clock:                      clock,
		createBillsHandler:         createBillsHandler,
		exchangeBillHandler:        exchangeBillHandler,
		markTransferHandler:        markTransferHandler,
		submitRequestHandler:       submitRequestHandler,
		resolveRequestHandler:      resolveRequestHandler,
		createShipperHandler:       createShipperHandler,
		searchBillsHandler:         searchBillsHandler,
		listShipperBillsHandler:    listShipperBillsHandler,
		listRequestsHandler:        listRequestsHandler,
		listRequestsForDateHandler: listRequestsForDateHandler,
		listUsersHandler:           listUsersHandler,
	}
}

// RegisterRoutes wires all endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.POST("/api/v1/auth/login", s.Login)

	api := e.Group("/api/v1", AuthMiddleware(s.tokens))
	api.POST("/bills", s.CreateBills)
	api.GET("/bills", s.SearchBills)
	api.GET("/bills/my", s.ListMyBills)
	api.POST("/bills/:code/exchange", s.ExchangeBill)
	api.POST("/bills/:code/transfer", s.MarkTransfer)
	api.POST("/requests", s.SubmitRequest)
	api.GET("/requests", s.ListRequests)
	api.GET("/requests/daily", s.ListRequestsForDate)
	api.POST("/requests/:id/resolve", s.ResolveRequest)
	api.POST("/shippers", s.CreateShipper)
	api.GET("/users", s.ListUsers)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Login handles POST /api/v1/auth/login - exchanges credentials for a token.
func (s *Server) Login(ctx echo.Context) error {
	var body loginRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, apiError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	creds, err := s.users.GetCredentials(ctx.Request().Context(), body.Username)
	if err != nil || !CheckPassword(body.Password, creds.HashedPassword) {
		return ctx.JSON(http.StatusUnauthorized, apiError{
			Code:    http.StatusUnauthorized,
			Message: "invalid credentials",
		})
	}

	token, err := s.tokens.Generate(creds.UserID, creds.Username, creds.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, loginResponse{
		Token:    token,
		UserID:   creds.UserID,
		Username: creds.Username,
		Role:     creds.Role,
	})
}

// CreateBills handles POST /api/v1/bills - registers a batch of bills.
func (s *Server) CreateBills(ctx echo.Context) error {
	identity := identityFrom(ctx)
	if err := s.policy.Authorize(identity, auth.OpCreateBills); err != nil {
		return respondError(ctx, err)
	}

	var body createBillsRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, apiError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	drafts := make([]commands.BillDraft, 0, len(body.Bills))
	for _, b := range body.Bills {
		code, err := kernel.NewBillCode(b.BillCode)
		if err != nil {
			return respondError(ctx, err)
		}
		draft, err := commands.NewBillDraft(
			code, b.CustName, b.CustPhone, b.CustAddress, b.Amount, b.IsTransfer, b.ShipperID)
		if err != nil {
			return respondError(ctx, err)
		}
		drafts = append(drafts, draft)
	}

	command, err := commands.NewCreateBillsCommand(drafts)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createBillsHandler.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{
		"groupCode": command.GroupCode().String(),
	})
}

// ExchangeBill handles POST /api/v1/bills/:code/exchange - corrects the
// shipper, amount and transfer flag of an existing bill.
func (s *Server) ExchangeBill(ctx echo.Context) error {
	identity := identityFrom(ctx)
	if err := s.policy.Authorize(identity, auth.OpExchangeBill); err != nil {
		return respondError(ctx, err)
	}

	code, err := kernel.NewBillCode(ctx.Param("code"))
	if err != nil {
		return respondError(ctx, err)
	}

	var body exchangeBillRequest
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, apiError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	command, err := commands.NewExchangeBillCommand(code, body.ShipperID, body.Amount, body.IsTransfer)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.exchangeBillHandler.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkTransfer handles POST /api/v1/bills/:code/transfer - lets the owning
// shipper set or clear the transfer flag.
func (s *Server) MarkTransfer(ctx echo.Context) error {
	identity := identityFrom(ctx)
	if err := s.policy.Authorize(identity, auth.OpMarkTransfer); err != nil {
		return respondError(ctx, err)
	}

	code, err := kernel.NewBillCode(ctx.Param("code"))
	if err != nil {
		return respondError(ctx, err)
	}

	var body markTransferRequest
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, apiError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	command, err := commands.NewMarkTransferCommand(identity.UserID, code, body.Value)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.markTransferHandler.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SearchBills handles GET /api/v1/bills - back-office bill search.
func (s *Server) SearchBills(ctx echo.Context) error {
	identity := identityFrom(ctx)
	if err := s.policy.Authorize(identity, auth.OpSearchBills); err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewSearchBillsQuery(
		ctx.QueryParam("billCode"),
		ctx.QueryParam("custName"),
		ctx.QueryParam("custPhone"),
		int64(intQueryParam(ctx, "shipperId")),
		intQueryParam(ctx, "fromDate"),
		intQueryParam(ctx, "toDate"),
		intQueryParam(ctx, "limit"),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	rows, err := s.searchBillsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, billResponses(rows))
}

// ListMyBills handles GET /api/v1/bills/my - the calling shipper's bills
// within a business date range. Missing bounds default to today.
func (s *Server) ListMyBills(ctx echo.Context) error {
	identity := identityFrom(ctx)
	if err := s.policy.Authorize(identity, auth.OpListShipperBills); err != nil {
		return respondError(ctx, err)
	}

	fromDate := intQueryParam(ctx, "fromDate")
	if fromDate == 0 {
		fromDate = s.clock.Today().Int()
	}
	toDate := intQueryParam(ctx, "toDate")
	if toDate == 0 {
		toDate = s.clock.Today().Int()
	}

	query, err := queries.NewListShipperBillsQuery(identity.UserID, fromDate, toDate)
	if err != nil {
		return respondError(ctx, err)
	}

	rows, err := s.listShipperBillsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, billResponses(rows))
}

// SubmitRequest handles POST /api/v1/requests - a shipper files a change
// request against one of their bills.
func (s *Server) SubmitRequest(ctx echo.Context) error {
	identity := identityFrom(ctx)
	if err := s.policy.Authorize(identity, auth.OpSubmitRequest); err != nil {
		return respondError(ctx, err)
	}

	var body submitRequestRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, apiError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	code, err := kernel.NewBillCode(body.BillCode)
	if err != nil {
		return respondError(ctx, err)
	}

	payload, err := requestPayload(body)
	if err != nil {
		return respondError(ctx, err)
	}

	command, err := commands.NewSubmitRequestCommand(identity.UserID, code, payload)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.submitRequestHandler.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ResolveRequest handles POST /api/v1/requests/:id/resolve - a manager
// accepts or rejects a pending request.
func (s *Server) ResolveRequest(ctx echo.Context) error {
	identity := identityFrom(ctx)
	if err := s.policy.Authorize(identity, auth.OpResolveRequest); err != nil {
		return respondError(ctx, err)
	}

	requestID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, apiError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request id",
		})
	}

	var body resolveRequestRequest
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, apiError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	command, err := commands.NewResolveRequestCommand(requestID, identity.UserID, body.Accept, body.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.resolveRequestHandler.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListRequests handles GET /api/v1/requests - the staff view over change
// requests, filterable by requester and status within a date range.
func (s *Server) ListRequests(ctx echo.Context) error {
	identity := identityFrom(ctx)
	if err := s.policy.Authorize(identity, auth.OpListRequests); err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewListRequestsQuery(
		int64(intQueryParam(ctx, "requesterId")),
		ctx.QueryParam("status"),
		intQueryParam(ctx, "fromDate"),
		intQueryParam(ctx, "toDate"),
		intQueryParam(ctx, "limit"),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	rows, err := s.listRequestsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, requestResponses(rows))
}

// ListRequestsForDate handles GET /api/v1/requests/daily - the approval
// worklist for one business day, pending entries first.
func (s *Server) ListRequestsForDate(ctx echo.Context) error {
	identity := identityFrom(ctx)
	if err := s.policy.Authorize(identity, auth.OpListRequestsForDay); err != nil {
		return respondError(ctx, err)
	}

	date := intQueryParam(ctx, "date")
	if date == 0 {
		date = s.clock.Today().Int()
	}

	query, err := queries.NewListRequestsForDateQuery(date)
	if err != nil {
		return respondError(ctx, err)
	}

	rows, err := s.listRequestsForDateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, requestResponses(rows))
}

// CreateShipper handles POST /api/v1/shippers - registers a shipper
// profile for an existing user account.
func (s *Server) CreateShipper(ctx echo.Context) error {
	identity := identityFrom(ctx)
	if err := s.policy.Authorize(identity, auth.OpCreateShipper); err != nil {
		return respondError(ctx, err)
	}

	var body createShipperRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, apiError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	command, err := commands.NewCreateShipperCommand(
		body.UserID, body.Username, body.FullName, body.Phone, shipper.Type(body.ShipperType))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createShipperHandler.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ListUsers handles GET /api/v1/users - accounts with their linked
// shipper profiles.
func (s *Server) ListUsers(ctx echo.Context) error {
	identity := identityFrom(ctx)
	if err := s.policy.Authorize(identity, auth.OpListUsers); err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewListUsersQuery(ctx.QueryParam("role"))
	if err != nil {
		return respondError(ctx, err)
	}

	rows, err := s.listUsersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]userResponse, len(rows))
	for i, row := range rows {
		response[i] = userResponse{
			ID:        row.ID,
			Username:  row.Username,
			Role:      row.Role,
			IsActive:  row.IsActive,
			ShipperID: row.ShipperID,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func requestPayload(body submitRequestRequest) (request.Payload, error) {
	switch request.Type(body.Type) {
	case request.RemoveBill:
		return request.RemoveBillPayload{}, nil
	case request.RemoveTransfer:
		return request.RemoveTransferPayload{}, nil
	case request.ChangeCod:
		return request.ChangeCodPayload{NewAmount: body.NewAmount}, nil
	default:
		return nil, request.Type(body.Type).Validate()
	}
}

func intQueryParam(ctx echo.Context, name string) int {
	value, err := strconv.Atoi(ctx.QueryParam(name))
	if err != nil {
		return 0
	}
	return value
}

func billResponses(rows []queries.BillRow) []billResponse {
	response := make([]billResponse, len(rows))
	for i, row := range rows {
		response[i] = billResponse{
			BillCode:     row.BillCode,
			OrgCode:      row.OrgCode,
			GroupCode:    row.GroupCode,
			CustName:     row.CustName,
			CustPhone:    row.CustPhone,
			CustAddress:  row.CustAddress,
			Amount:       row.Amount,
			IsTransfer:   row.IsTransfer,
			ShipperID:    row.ShipperID,
			ShipperName:  row.ShipperName,
			BusinessDate: row.BusinessDate,
			Status:       row.Status,
		}
	}
	return response
}

func requestResponses(rows []queries.RequestRow) []requestResponse {
	response := make([]requestResponse, len(rows))
	for i, row := range rows {
		response[i] = requestResponse{
			ID:            row.ID,
			RequesterID:   row.RequesterID,
			RequesterName: row.RequesterName,
			BillCode:      row.BillCode,
			Type:          row.Type,
			NewAmount:     row.NewAmount,
			Content:       row.Content,
			Status:        row.Status,
			ApproverID:    row.ApproverID,
			Reason:        row.Reason,
			ApprovedAt:    row.ApprovedAt,
			BusinessDate:  row.BusinessDate,
		}
	}
	return response
}
