package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/farmasystem/pos/internal"
	"github.com/farmasystem/pos/internal/backend"
	"github.com/farmasystem/pos/internal/config"
	inErrors "github.com/farmasystem/pos/internal/errors"
	"github.com/farmasystem/pos/pos/internal/catalog"
	"github.com/farmasystem/pos/pos/pkg/request"
)

func newPosService(t *testing.T, backendURL string, submitTimeout time.Duration) *PosService {
	t.Helper()
	backendClient := backend.NewClient(config.Backend{
		BaseURL:        backendURL,
		SubmitTimeout:  submitTimeout,
		RequestTimeout: submitTimeout,
	})
	// cache is intentionally unreachable; the checkout flow only warns on
	// a failed invalidation
	cache := redis.NewClient(&redis.Options{Addr: "localhost:1"})
	catalogService := catalog.NewService(backendClient, cache, time.Hour)
	return NewPosService(NewSessions(), catalogService, backendClient)
}

func sellerContext(t *testing.T, sellerId string) context.Context {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   sellerId,
		Issuer:    "auth-service",
		Audience:  jwt.ClaimStrings{"audience-seller"},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	signed, err := token.SignedString([]byte("secret"))
	assert.NoError(t, err)
	token.Raw = signed
	return internal.AttachJwtToken(context.Background(), token)
}

func seedCart(t *testing.T, svc *PosService) *Session {
	t.Helper()
	session := svc.sessions.Create()
	assert.NoError(t, session.Cart.AddItem(paracetamol(), 2))
	return session
}

func TestConfirmSaleSuccessClearsCart(t *testing.T) {
	received := backend.SalePayload{}
	server := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/sales", r.URL.Path)
			assert.NotEmpty(t, r.Header.Get("Authorization"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]int64{"id": 42})
		}),
	)
	defer server.Close()

	svc := newPosService(t, server.URL, time.Second)
	session := seedCart(t, svc)
	assert.NoError(t, session.Checkout.Open())

	c := sellerContext(t, "7")
	checkout, err := svc.ConfirmSale(c, session.ID, request.ConfirmSale{
		DocumentId: "87654321",
		BuyerName:  "JUAN PEREZ",
	})

	assert.NoError(t, err)
	assert.Equal(t, string(StateSuccess), checkout.State)
	assert.EqualValues(t, 42, checkout.SaleId)
	assert.True(t, session.Cart.IsEmpty())

	assert.Equal(t, "87654321", received.ClientDni)
	assert.Equal(t, "JUAN PEREZ", received.ClientName)
	assert.EqualValues(t, 7, received.SellerId)
	assert.Len(t, received.Items, 1)
	assert.EqualValues(t, 1, received.Items[0].ProductId)
	assert.EqualValues(t, 2, received.Items[0].Quantity)
}

func TestConfirmSaleAnonymousSubstitution(t *testing.T) {
	received := backend.SalePayload{}
	server := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]int64{"id": 43})
		}),
	)
	defer server.Close()

	svc := newPosService(t, server.URL, time.Second)
	session := seedCart(t, svc)
	assert.NoError(t, session.Checkout.Open())

	c := sellerContext(t, "7")
	checkout, err := svc.ConfirmSale(c, session.ID, request.ConfirmSale{AcceptAnonymous: true})

	assert.NoError(t, err)
	assert.Equal(t, string(StateSuccess), checkout.State)
	assert.Equal(t, AnonymousDocumentId, received.ClientDni)
	assert.Equal(t, AnonymousBuyerName, received.ClientName)
}

func TestConfirmSaleNameOnlyDefaultsDocument(t *testing.T) {
	received := backend.SalePayload{}
	server := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]int64{"id": 45})
		}),
	)
	defer server.Close()

	svc := newPosService(t, server.URL, time.Second)
	session := seedCart(t, svc)
	assert.NoError(t, session.Checkout.Open())

	c := sellerContext(t, "7")
	checkout, err := svc.ConfirmSale(c, session.ID, request.ConfirmSale{
		BuyerName: "JUAN PEREZ",
	})

	assert.NoError(t, err)
	assert.Equal(t, string(StateSuccess), checkout.State)
	assert.Equal(t, AnonymousDocumentId, received.ClientDni)
	assert.Equal(t, "JUAN PEREZ", received.ClientName)
	assert.True(t, session.Cart.IsEmpty())
}

func TestConfirmSaleDocumentOnlyDefaultsName(t *testing.T) {
	received := backend.SalePayload{}
	server := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]int64{"id": 46})
		}),
	)
	defer server.Close()

	svc := newPosService(t, server.URL, time.Second)
	session := seedCart(t, svc)
	assert.NoError(t, session.Checkout.Open())

	c := sellerContext(t, "7")
	checkout, err := svc.ConfirmSale(c, session.ID, request.ConfirmSale{
		DocumentId:      "87654321",
		AcceptAnonymous: true,
	})

	assert.NoError(t, err)
	assert.Equal(t, string(StateSuccess), checkout.State)
	assert.Equal(t, "87654321", received.ClientDni)
	assert.Equal(t, AnonymousBuyerName, received.ClientName)
}

func TestConfirmSaleRejectionKeepsCart(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "insufficient stock"})
		}),
	)
	defer server.Close()

	svc := newPosService(t, server.URL, time.Second)
	session := seedCart(t, svc)
	assert.NoError(t, session.Checkout.Open())

	c := sellerContext(t, "7")
	checkout, err := svc.ConfirmSale(c, session.ID, request.ConfirmSale{AcceptAnonymous: true})

	assert.NoError(t, err)
	assert.Equal(t, string(StateFailed), checkout.State)
	assert.Contains(t, checkout.Message, "insufficient stock")
	assert.Len(t, session.Cart.Items(), 1)
}

func TestConfirmSaleTimeoutKeepsCart(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(300 * time.Millisecond)
			_ = json.NewEncoder(w).Encode(map[string]int64{"id": 42})
		}),
	)
	defer server.Close()

	svc := newPosService(t, server.URL, 50*time.Millisecond)
	session := seedCart(t, svc)
	assert.NoError(t, session.Checkout.Open())

	c := sellerContext(t, "7")
	checkout, err := svc.ConfirmSale(c, session.ID, request.ConfirmSale{AcceptAnonymous: true})

	assert.NoError(t, err)
	assert.Equal(t, string(StateFailed), checkout.State)
	assert.NotEmpty(t, checkout.Message)
	assert.Len(t, session.Cart.Items(), 1)
}

func TestConfirmSaleRetryAfterFailure(t *testing.T) {
	failFirst := true
	server := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if failFirst {
				failFirst = false
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{"message": "backend down"})
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]int64{"id": 44})
		}),
	)
	defer server.Close()

	svc := newPosService(t, server.URL, time.Second)
	session := seedCart(t, svc)
	assert.NoError(t, session.Checkout.Open())

	c := sellerContext(t, "7")
	checkout, err := svc.ConfirmSale(c, session.ID, request.ConfirmSale{AcceptAnonymous: true})
	assert.NoError(t, err)
	assert.Equal(t, string(StateFailed), checkout.State)
	assert.Len(t, session.Cart.Items(), 1)

	checkout, err = svc.ConfirmSale(c, session.ID, request.ConfirmSale{AcceptAnonymous: true})
	assert.NoError(t, err)
	assert.Equal(t, string(StateSuccess), checkout.State)
	assert.EqualValues(t, 44, checkout.SaleId)
	assert.True(t, session.Cart.IsEmpty())
}

func TestConfirmSaleBuyerValidation(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("backend must not be called")
		}),
	)
	defer server.Close()

	tests := []struct {
		name    string
		param   request.ConfirmSale
		wantErr error
	}{
		{
			name:    "empty buyer without anonymous consent",
			param:   request.ConfirmSale{},
			wantErr: inErrors.ErrBuyerNameRequired,
		},
		{
			name:    "document with wrong length",
			param:   request.ConfirmSale{DocumentId: "123", BuyerName: "JUAN"},
			wantErr: inErrors.ErrInvalidDocument,
		},
		{
			name:    "document with letters",
			param:   request.ConfirmSale{DocumentId: "1234567a", BuyerName: "JUAN"},
			wantErr: inErrors.ErrInvalidDocument,
		},
		{
			name:    "document without name",
			param:   request.ConfirmSale{DocumentId: "87654321"},
			wantErr: inErrors.ErrBuyerNameRequired,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newPosService(t, server.URL, time.Second)
			session := seedCart(t, svc)
			assert.NoError(t, session.Checkout.Open())

			c := sellerContext(t, "7")
			checkout, err := svc.ConfirmSale(c, session.ID, tt.param)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, string(StateAwaitingBuyerInfo), checkout.State)
			assert.Len(t, session.Cart.Items(), 1)
		})
	}
}

func TestConfirmSaleWithoutToken(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("backend must not be called")
		}),
	)
	defer server.Close()

	svc := newPosService(t, server.URL, time.Second)
	session := seedCart(t, svc)
	assert.NoError(t, session.Checkout.Open())

	_, err := svc.ConfirmSale(context.Background(), session.ID, request.ConfirmSale{
		AcceptAnonymous: true,
	})

	assert.ErrorIs(t, err, inErrors.ErrMissingSession)
	assert.Equal(t, StateAwaitingBuyerInfo, session.Checkout.State())
}

func TestOpenCheckoutEmptyCart(t *testing.T) {
	svc := newPosService(t, "http://localhost:1", time.Second)
	session := svc.sessions.Create()

	_, err := svc.OpenCheckout(context.Background(), session.ID)

	assert.ErrorIs(t, err, inErrors.ErrEmptyCart)
	assert.Equal(t, StateIdle, session.Checkout.State())
}

func TestCartOperationsUnknownSession(t *testing.T) {
	svc := newPosService(t, "http://localhost:1", time.Second)

	_, err := svc.FindCart(context.Background(), [16]byte{1})
	assert.ErrorIs(t, err, inErrors.ErrSessionNotFound)

	_, err = svc.OpenCheckout(context.Background(), [16]byte{1})
	assert.ErrorIs(t, err, inErrors.ErrSessionNotFound)
}

func TestCartFrozenWhileSubmitting(t *testing.T) {
	svc := newPosService(t, "http://localhost:1", time.Second)
	session := seedCart(t, svc)
	assert.NoError(t, session.Checkout.Open())
	assert.NoError(t, session.Checkout.BeginSubmit())

	_, err := svc.UpdateCartItem(
		context.Background(),
		session.ID,
		1,
		request.UpdateCartItem{Quantity: 5},
	)
	assert.ErrorIs(t, err, inErrors.ErrCheckoutInProgress)

	_, err = svc.RemoveCartItem(context.Background(), session.ID, 1)
	assert.ErrorIs(t, err, inErrors.ErrCheckoutInProgress)

	_, err = svc.ClearCart(context.Background(), session.ID)
	assert.ErrorIs(t, err, inErrors.ErrCheckoutInProgress)

	assert.Len(t, session.Cart.Items(), 1)
}

func TestSubmittedPayloadMatchesFrozenCart(t *testing.T) {
	var svc *PosService
	var session *Session
	received := backend.SalePayload{}
	server := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// mutation attempts while the submission is in flight must
			// bounce so the payload and the cleared cart stay in sync
			_, err := svc.AddCartItem(context.Background(), session.ID, request.AddCartItem{
				ProductId: 2,
				Quantity:  1,
			})
			assert.ErrorIs(t, err, inErrors.ErrCheckoutInProgress)
			_, err = svc.UpdateCartItem(context.Background(), session.ID, 1,
				request.UpdateCartItem{Quantity: 9})
			assert.ErrorIs(t, err, inErrors.ErrCheckoutInProgress)

			assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]int64{"id": 47})
		}),
	)
	defer server.Close()

	svc = newPosService(t, server.URL, time.Second)
	session = seedCart(t, svc)
	assert.NoError(t, session.Checkout.Open())

	c := sellerContext(t, "7")
	checkout, err := svc.ConfirmSale(c, session.ID, request.ConfirmSale{AcceptAnonymous: true})

	assert.NoError(t, err)
	assert.Equal(t, string(StateSuccess), checkout.State)
	assert.Len(t, received.Items, 1)
	assert.EqualValues(t, 2, received.Items[0].Quantity)
	assert.True(t, session.Cart.IsEmpty())
}

func TestLookupBuyer(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if r.URL.Path == "/customers/87654321" {
				_ = json.NewEncoder(w).Encode(map[string]string{"nombre": "JUAN PEREZ"})
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}),
	)
	defer server.Close()

	svc := newPosService(t, server.URL, time.Second)

	buyer, err := svc.LookupBuyer(context.Background(), "87654321")
	assert.NoError(t, err)
	assert.Equal(t, "87654321", buyer.DocumentId)
	assert.Equal(t, "JUAN PEREZ", buyer.Name)

	_, err = svc.LookupBuyer(context.Background(), "11111111111")
	assert.ErrorIs(t, err, inErrors.ErrLookupMiss)

	_, err = svc.LookupBuyer(context.Background(), "123")
	assert.ErrorIs(t, err, inErrors.ErrInvalidDocument)
}

func TestFindCartTotals(t *testing.T) {
	svc := newPosService(t, "http://localhost:1", time.Second)
	session := seedCart(t, svc)

	cart, err := svc.FindCart(context.Background(), session.ID)

	assert.NoError(t, err)
	assert.Len(t, cart.Lines, 1)
	assert.Equal(t, "11.98", cart.Totals.Subtotal.String())
	assert.Equal(t, "2.16", cart.Totals.Tax.String())
	assert.Equal(t, "14.14", cart.Totals.Total.String())
	assert.Equal(t, "11.98", cart.Lines[0].LineTotal.String())
}
