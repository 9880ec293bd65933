package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/farmasystem/pos/internal"
	"github.com/farmasystem/pos/internal/backend"
	inErrors "github.com/farmasystem/pos/internal/errors"
	"github.com/farmasystem/pos/internal/log"
	"github.com/farmasystem/pos/internal/otel"
	"github.com/farmasystem/pos/pos/internal/catalog"
	"github.com/farmasystem/pos/pos/pkg/request"
	"github.com/farmasystem/pos/pos/pkg/response"
)

// Anonymous buyer substituted when the seller confirms a sale without
// identifying the customer.
const (
	AnonymousDocumentId = "00000000"
	AnonymousBuyerName  = "PÚBLICO GENERAL"
)

type PosService struct {
	sessions *Sessions
	catalog  *catalog.Service
	backend  *backend.Client
}

func NewPosService(
	sessions *Sessions,
	catalogService *catalog.Service,
	backendClient *backend.Client,
) *PosService {
	return &PosService{sessions: sessions, catalog: catalogService, backend: backendClient}
}

func (s *PosService) CreateSession(c context.Context) response.Session {
	c, span := otel.Tracer.Start(c, "PosService CreateSession")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "PosService CreateSession").
		Logger()

	session := s.sessions.Create()
	logger.Info().
		Str(log.KeySessionID, session.ID.String()).
		Msg("created terminal session")

	return response.Session{ID: session.ID}
}

func (s *PosService) RemoveSession(c context.Context, sessionId uuid.UUID) {
	c, span := otel.Tracer.Start(c, "PosService RemoveSession")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "PosService RemoveSession").
		Str(log.KeySessionID, sessionId.String()).
		Logger()

	s.sessions.Remove(sessionId)
	logger.Info().Msg("removed terminal session")
}

func (s *PosService) FindCart(c context.Context, sessionId uuid.UUID) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "PosService FindCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "PosService FindCart").
		Str(log.KeySessionID, sessionId.String()).
		Logger()

	session, err := s.sessions.Get(sessionId)
	if err != nil {
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}

	return toCartResponse(sessionId, session.Cart.Items()), nil
}

// AddCartItem snapshots the product from the catalog and merges it into the
// session's cart. The cart is frozen while a submission is in flight.
func (s *PosService) AddCartItem(
	c context.Context,
	sessionId uuid.UUID,
	param request.AddCartItem,
) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "PosService AddCartItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "PosService AddCartItem").
		Str(log.KeySessionID, sessionId.String()).
		Int64(log.KeyProductID, param.ProductId).
		Int32(log.KeyQuantity, param.Quantity).
		Logger()

	session, err := s.sessions.Get(sessionId)
	if err != nil {
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	if session.Checkout.Submitting() {
		err = fmt.Errorf("failed adding cart item with error=%w", inErrors.ErrCheckoutInProgress)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}

	logger = logger.With().Str(log.KeyProcess, "finding product").Logger()
	logger.Info().Msg("finding product in catalog")
	c = logger.WithContext(c)
	product, err := s.catalog.FindProductById(c, param.ProductId)
	if err != nil {
		err = fmt.Errorf("failed finding product with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Msg("found product in catalog")

	logger = logger.With().Str(log.KeyProcess, "adding cart item").Logger()
	err = session.Cart.AddItem(Product{
		ID:             product.ID,
		Name:           product.Name,
		UnitPrice:      product.SalePrice,
		AvailableStock: product.TotalStock,
	}, param.Quantity)
	if err != nil {
		err = fmt.Errorf("failed adding cart item with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Msg("added cart item")

	return toCartResponse(sessionId, session.Cart.Items()), nil
}

func (s *PosService) UpdateCartItem(
	c context.Context,
	sessionId uuid.UUID,
	productId int64,
	param request.UpdateCartItem,
) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "PosService UpdateCartItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "PosService UpdateCartItem").
		Str(log.KeySessionID, sessionId.String()).
		Int64(log.KeyProductID, productId).
		Int32(log.KeyQuantity, param.Quantity).
		Logger()

	session, err := s.sessions.Get(sessionId)
	if err != nil {
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	if session.Checkout.Submitting() {
		err = fmt.Errorf("failed updating cart item with error=%w", inErrors.ErrCheckoutInProgress)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}

	err = session.Cart.UpdateQuantity(productId, param.Quantity)
	if err != nil {
		err = fmt.Errorf("failed updating cart item with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Msg("updated cart item")

	return toCartResponse(sessionId, session.Cart.Items()), nil
}

func (s *PosService) RemoveCartItem(
	c context.Context,
	sessionId uuid.UUID,
	productId int64,
) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "PosService RemoveCartItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "PosService RemoveCartItem").
		Str(log.KeySessionID, sessionId.String()).
		Int64(log.KeyProductID, productId).
		Logger()

	session, err := s.sessions.Get(sessionId)
	if err != nil {
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	if session.Checkout.Submitting() {
		err = fmt.Errorf("failed removing cart item with error=%w", inErrors.ErrCheckoutInProgress)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}

	session.Cart.RemoveItem(productId)
	logger.Info().Msg("removed cart item")

	return toCartResponse(sessionId, session.Cart.Items()), nil
}

func (s *PosService) ClearCart(c context.Context, sessionId uuid.UUID) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "PosService ClearCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "PosService ClearCart").
		Str(log.KeySessionID, sessionId.String()).
		Logger()

	session, err := s.sessions.Get(sessionId)
	if err != nil {
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	if session.Checkout.Submitting() {
		err = fmt.Errorf("failed clearing cart with error=%w", inErrors.ErrCheckoutInProgress)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}

	session.Cart.Clear()
	logger.Info().Msg("cleared cart")

	return toCartResponse(sessionId, session.Cart.Items()), nil
}

// OpenCheckout moves the session into buyer-info capture. An empty cart
// cannot be checked out.
func (s *PosService) OpenCheckout(
	c context.Context,
	sessionId uuid.UUID,
) (response.Checkout, error) {
	c, span := otel.Tracer.Start(c, "PosService OpenCheckout")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "PosService OpenCheckout").
		Str(log.KeySessionID, sessionId.String()).
		Logger()

	session, err := s.sessions.Get(sessionId)
	if err != nil {
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Checkout{}, err
	}
	if session.Cart.IsEmpty() {
		err = fmt.Errorf("failed opening checkout with error=%w", inErrors.ErrEmptyCart)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Checkout{}, err
	}

	err = session.Checkout.Open()
	if err != nil {
		err = fmt.Errorf("failed opening checkout with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Checkout{}, err
	}
	logger.Info().
		Str(log.KeyCheckoutState, string(session.Checkout.State())).
		Msg("opened checkout")

	return toCheckoutResponse(sessionId, session.Checkout), nil
}

func (s *PosService) FindCheckout(
	c context.Context,
	sessionId uuid.UUID,
) (response.Checkout, error) {
	c, span := otel.Tracer.Start(c, "PosService FindCheckout")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "PosService FindCheckout").
		Str(log.KeySessionID, sessionId.String()).
		Logger()

	session, err := s.sessions.Get(sessionId)
	if err != nil {
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Checkout{}, err
	}

	return toCheckoutResponse(sessionId, session.Checkout), nil
}

// CancelCheckout acknowledges a finished checkout or abandons an open one.
// The cart is left untouched.
func (s *PosService) CancelCheckout(
	c context.Context,
	sessionId uuid.UUID,
) (response.Checkout, error) {
	c, span := otel.Tracer.Start(c, "PosService CancelCheckout")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "PosService CancelCheckout").
		Str(log.KeySessionID, sessionId.String()).
		Logger()

	session, err := s.sessions.Get(sessionId)
	if err != nil {
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Checkout{}, err
	}

	err = session.Checkout.Cancel()
	if err != nil {
		err = fmt.Errorf("failed cancelling checkout with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Checkout{}, err
	}
	logger.Info().Msg("cancelled checkout")

	return toCheckoutResponse(sessionId, session.Checkout), nil
}

// LookupBuyer resolves a buyer name from a document id. A miss is not an
// error for the terminal flow; the seller types the name instead.
func (s *PosService) LookupBuyer(
	c context.Context,
	documentId string,
) (response.Buyer, error) {
	c, span := otel.Tracer.Start(c, "PosService LookupBuyer")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "PosService LookupBuyer").
		Str(log.KeyDocumentID, documentId).
		Logger()

	if !validDocument(documentId) {
		err := fmt.Errorf("documentId=%s: %w", documentId, inErrors.ErrInvalidDocument)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Buyer{}, err
	}

	logger = logger.With().Str(log.KeyProcess, "finding customer").Logger()
	c = logger.WithContext(c)
	customer, err := s.backend.FindCustomerByDocument(c, documentId)
	if err != nil {
		err = fmt.Errorf("failed finding customer with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Buyer{}, err
	}
	logger.Info().Msg("found customer")

	return response.Buyer{DocumentId: documentId, Name: customer.Name}, nil
}

func validDocument(documentId string) bool {
	if len(documentId) != 8 && len(documentId) != 11 {
		return false
	}
	for _, r := range documentId {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ConfirmSale validates buyer info, transitions the checkout to Submitting
// and posts the sale. Success clears the cart; any failure, timeout included,
// leaves the cart intact so the seller can retry or cancel.
func (s *PosService) ConfirmSale(
	c context.Context,
	sessionId uuid.UUID,
	param request.ConfirmSale,
) (response.Checkout, error) {
	c, span := otel.Tracer.Start(c, "PosService ConfirmSale")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "PosService ConfirmSale").
		Str(log.KeySessionID, sessionId.String()).
		Logger()

	session, err := s.sessions.Get(sessionId)
	if err != nil {
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Checkout{}, err
	}

	logger = logger.With().Str(log.KeyProcess, "resolving seller").Logger()
	c = logger.WithContext(c)
	token, err := internal.JwtTokenFromContext(c)
	if err != nil {
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Checkout{}, err
	}
	sellerId, err := internal.SellerIdFromJwtToken(c)
	if err != nil {
		err = fmt.Errorf("failed resolving seller with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Checkout{}, err
	}
	logger = logger.With().Int64(log.KeySellerID, sellerId).Logger()

	// Each buyer field defaults independently: a missing document becomes
	// the anonymous dni, a missing name needs explicit anonymous consent
	// before it becomes the anonymous buyer.
	logger = logger.With().Str(log.KeyProcess, "validating buyer").Logger()
	documentId := param.DocumentId
	buyerName := param.BuyerName
	if documentId != "" && !validDocument(documentId) {
		err = fmt.Errorf("documentId=%s: %w", documentId, inErrors.ErrInvalidDocument)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return toCheckoutResponse(sessionId, session.Checkout), err
	}
	if buyerName == "" && !param.AcceptAnonymous {
		err = fmt.Errorf("failed validating buyer with error=%w", inErrors.ErrBuyerNameRequired)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return toCheckoutResponse(sessionId, session.Checkout), err
	}
	if documentId == "" {
		documentId = AnonymousDocumentId
	}
	if buyerName == "" {
		buyerName = AnonymousBuyerName
	}
	logger = logger.With().
		Str(log.KeyDocumentID, documentId).
		Str(log.KeyBuyerName, buyerName).
		Logger()
	logger.Info().Msg("validated buyer")

	if session.Cart.IsEmpty() {
		err = fmt.Errorf("failed confirming sale with error=%w", inErrors.ErrEmptyCart)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return toCheckoutResponse(sessionId, session.Checkout), err
	}

	logger = logger.With().Str(log.KeyProcess, "beginning submission").Logger()
	err = session.Checkout.BeginSubmit()
	if err != nil {
		err = fmt.Errorf("failed beginning submission with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return toCheckoutResponse(sessionId, session.Checkout), err
	}
	logger.Info().Msg("began submission")

	// Snapshot only after the state flipped to Submitting; the freeze on
	// cart mutations guarantees the payload matches what gets cleared.
	items := session.Cart.Items()
	if len(items) == 0 {
		session.Checkout.FailSubmit(inErrors.ErrEmptyCart.Error())
		err = fmt.Errorf("failed confirming sale with error=%w", inErrors.ErrEmptyCart)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return toCheckoutResponse(sessionId, session.Checkout), err
	}

	payload := backend.SalePayload{
		ClientDni:  documentId,
		ClientName: buyerName,
		SellerId:   sellerId,
		Items:      make([]backend.SaleItem, len(items)),
	}
	for i, item := range items {
		payload.Items[i] = backend.SaleItem{
			ProductId: item.ProductId,
			Quantity:  item.Quantity,
		}
	}

	logger = logger.With().Str(log.KeyProcess, "submitting sale").Logger()
	c = logger.WithContext(c)
	receipt, err := s.backend.SubmitSale(c, token.Raw, payload)
	if err != nil {
		session.Checkout.FailSubmit(err.Error())
		err = fmt.Errorf("failed submitting sale with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return toCheckoutResponse(sessionId, session.Checkout), nil
	}

	session.Checkout.CompleteSubmit(receipt.ID)
	session.Cart.Clear()
	logger = logger.With().Int64(log.KeySaleID, receipt.ID).Logger()
	logger.Info().Msg("sale submitted, cart cleared")

	// Stock changed on the backend; drop the cached catalog so the next
	// product search shows it.
	if err := s.catalog.Invalidate(c); err != nil {
		logger.Warn().Err(err).Msg("failed invalidating catalog cache")
	}

	return toCheckoutResponse(sessionId, session.Checkout), nil
}
