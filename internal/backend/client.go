package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/farmasystem/pos/internal/config"
	inErrors "github.com/farmasystem/pos/internal/errors"
	inHttp "github.com/farmasystem/pos/internal/http"
	"github.com/farmasystem/pos/internal/log"
	"github.com/farmasystem/pos/internal/otel"
)

// Client talks to the external pharmacy backend. Submissions are never
// retried here; a failed sale is surfaced and left to the seller.
type Client struct {
	cfg    config.Backend
	client *http.Client
}

func NewClient(cfg config.Backend) *Client {
	return &Client{cfg: cfg, client: otelhttp.DefaultClient}
}

func (b *Client) newRequest(
	c context.Context,
	method string,
	path string,
	body []byte,
) (*http.Request, error) {
	var reader *bytes.Buffer
	if body == nil {
		reader = bytes.NewBuffer(nil)
	} else {
		reader = bytes.NewBuffer(body)
	}
	req, err := http.NewRequestWithContext(c, method, b.cfg.BaseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Add(inHttp.HeaderContentType, inHttp.HeaderValueJson)
	if requestId := log.RequestIDFromContext(c); requestId != "" {
		req.Header.Add(inHttp.HeaderRequestID, requestId)
	}
	return req, nil
}

// message digs the backend's {message} out of an error body, falling back
// to a generic string when the body is not parseable.
func message(resp *http.Response) string {
	respBody := map[string]interface{}{}
	if err := json.NewDecoder(resp.Body).Decode(&respBody); err == nil {
		if msg, ok := respBody["message"].(string); ok && msg != "" {
			return msg
		}
	}
	return fmt.Sprintf("backend returned status code=%d", resp.StatusCode)
}

func (b *Client) FindProducts(c context.Context) ([]Product, error) {
	c, span := otel.Tracer.Start(c, "BackendClient FindProducts")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "BackendClient FindProducts").
		Logger()

	c, cancel := context.WithTimeout(c, b.cfg.RequestTimeout)
	defer cancel()

	logger = logger.With().Str(log.KeyProcess, "finding products in backend").Logger()
	logger.Info().Msg("finding products in backend")
	req, err := b.newRequest(c, http.MethodGet, "/products", nil)
	if err != nil {
		err = fmt.Errorf("failed creating products request with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	resp, err := b.client.Do(req)
	if err != nil {
		err = fmt.Errorf("failed finding products with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("failed finding products with error=%s", message(resp))
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}

	products := []Product{}
	err = json.NewDecoder(resp.Body).Decode(&products)
	if err != nil {
		err = fmt.Errorf("failed decoding products with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger = logger.With().Int(log.KeyProductCount, len(products)).Logger()
	logger.Info().Msg("found products in backend")

	return products, nil
}

func (b *Client) FindCustomerByDocument(
	c context.Context,
	documentId string,
) (Customer, error) {
	c, span := otel.Tracer.Start(c, "BackendClient FindCustomerByDocument")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "BackendClient FindCustomerByDocument").
		Str(log.KeyDocumentID, documentId).
		Logger()

	c, cancel := context.WithTimeout(c, b.cfg.RequestTimeout)
	defer cancel()

	logger = logger.With().Str(log.KeyProcess, "finding customer by document").Logger()
	logger.Info().Msgf("finding customer by documentId=%s", documentId)
	req, err := b.newRequest(c, http.MethodGet, "/customers/"+documentId, nil)
	if err != nil {
		err = fmt.Errorf("failed creating customer request with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return Customer{}, err
	}
	resp, err := b.client.Do(req)
	if err != nil {
		err = fmt.Errorf("failed finding customer with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return Customer{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		logger.Info().Msgf("customer documentId=%s not found", documentId)
		return Customer{}, inErrors.ErrLookupMiss
	}
	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("failed finding customer with error=%s", message(resp))
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return Customer{}, err
	}

	customer := Customer{}
	err = json.NewDecoder(resp.Body).Decode(&customer)
	if err != nil {
		err = fmt.Errorf("failed decoding customer with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return Customer{}, err
	}
	logger.Info().Msgf("found customer by documentId=%s", documentId)

	return customer, nil
}

// SubmitSale posts the sale under the submit timeout. A timeout or transport
// failure is indistinguishable from a rejection for the caller: the sale did
// not happen and the cart must stay intact.
func (b *Client) SubmitSale(
	c context.Context,
	token string,
	payload SalePayload,
) (SaleReceipt, error) {
	c, span := otel.Tracer.Start(c, "BackendClient SubmitSale")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "BackendClient SubmitSale").
		Str(log.KeyDocumentID, payload.ClientDni).
		Int64(log.KeySellerID, payload.SellerId).
		Logger()

	c, cancel := context.WithTimeout(c, b.cfg.SubmitTimeout)
	defer cancel()

	logger = logger.With().Str(log.KeyProcess, "marshaling sale payload").Logger()
	logger.Info().Msg("marshaling sale payload")
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		err = fmt.Errorf("failed marshaling sale payload with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return SaleReceipt{}, err
	}
	logger.Info().Msg("marshaled sale payload")

	logger = logger.With().Str(log.KeyProcess, "submitting sale").Logger()
	logger.Info().Msg("submitting sale to backend")
	span.AddEvent("submitting sale to backend")
	req, err := b.newRequest(c, http.MethodPost, "/sales", payloadJson)
	if err != nil {
		err = fmt.Errorf("failed creating sale request with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return SaleReceipt{}, err
	}
	req.Header.Add(inHttp.HeaderAuthorization, "Bearer "+token)
	resp, err := b.client.Do(req)
	if err != nil {
		err = fmt.Errorf(
			"failed submitting sale with error=%w",
			fmt.Errorf("%w: %s", inErrors.ErrSubmissionRejected, err.Error()),
		)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return SaleReceipt{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		err = fmt.Errorf("%w: %s", inErrors.ErrSubmissionRejected, message(resp))
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return SaleReceipt{}, err
	}
	span.AddEvent("submitted sale to backend")
	logger.Info().Msg("submitted sale to backend")

	logger = logger.With().Str(log.KeyProcess, "decoding sale receipt").Logger()
	receipt := SaleReceipt{}
	err = json.NewDecoder(resp.Body).Decode(&receipt)
	if err != nil {
		err = fmt.Errorf("failed decoding sale receipt with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return SaleReceipt{}, err
	}
	logger = logger.With().Int64(log.KeySaleID, receipt.ID).Logger()
	logger.Info().Msgf("sale submitted with saleId=%d", receipt.ID)

	return receipt, nil
}

func (b *Client) getReport(c context.Context, token string, path string, out any) error {
	c, span := otel.Tracer.Start(c, "BackendClient getReport")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "BackendClient getReport").
		Str(log.KeyProcess, "fetching report "+path).
		Logger()

	c, cancel := context.WithTimeout(c, b.cfg.RequestTimeout)
	defer cancel()

	logger.Info().Msgf("fetching report %s", path)
	req, err := b.newRequest(c, http.MethodGet, path, nil)
	if err != nil {
		err = fmt.Errorf("failed creating report request with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	req.Header.Add(inHttp.HeaderAuthorization, "Bearer "+token)
	resp, err := b.client.Do(req)
	if err != nil {
		err = fmt.Errorf("failed fetching report with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("failed fetching report with error=%s", message(resp))
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}

	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		err = fmt.Errorf("failed decoding report with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msgf("fetched report %s", path)

	return nil
}

func (b *Client) FindUsers(c context.Context, token string) ([]User, error) {
	c, span := otel.Tracer.Start(c, "BackendClient FindUsers")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "BackendClient FindUsers").
		Logger()

	c, cancel := context.WithTimeout(c, b.cfg.RequestTimeout)
	defer cancel()

	logger = logger.With().Str(log.KeyProcess, "finding users in backend").Logger()
	logger.Info().Msg("finding users in backend")
	req, err := b.newRequest(c, http.MethodGet, "/users", nil)
	if err != nil {
		err = fmt.Errorf("failed creating users request with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	req.Header.Add(inHttp.HeaderAuthorization, "Bearer "+token)
	resp, err := b.client.Do(req)
	if err != nil {
		err = fmt.Errorf("failed finding users with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("failed finding users with error=%s", message(resp))
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}

	users := []User{}
	err = json.NewDecoder(resp.Body).Decode(&users)
	if err != nil {
		err = fmt.Errorf("failed decoding users with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msg("found users in backend")

	return users, nil
}

func (b *Client) CreateUser(c context.Context, token string, payload CreateUser) (User, error) {
	c, span := otel.Tracer.Start(c, "BackendClient CreateUser")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "BackendClient CreateUser").
		Str(log.KeyUsername, payload.Username).
		Logger()

	c, cancel := context.WithTimeout(c, b.cfg.RequestTimeout)
	defer cancel()

	logger = logger.With().Str(log.KeyProcess, "creating user in backend").Logger()
	logger.Info().Msg("creating user in backend")
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		err = fmt.Errorf("failed marshaling user payload with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return User{}, err
	}
	req, err := b.newRequest(c, http.MethodPost, "/users", payloadJson)
	if err != nil {
		err = fmt.Errorf("failed creating user request with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return User{}, err
	}
	req.Header.Add(inHttp.HeaderAuthorization, "Bearer "+token)
	resp, err := b.client.Do(req)
	if err != nil {
		err = fmt.Errorf("failed creating user with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return User{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		err = fmt.Errorf("failed creating user with error=%s", message(resp))
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return User{}, err
	}

	user := User{}
	err = json.NewDecoder(resp.Body).Decode(&user)
	if err != nil {
		err = fmt.Errorf("failed decoding user with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return User{}, err
	}
	logger = logger.With().Int64(log.KeyUserID, user.ID).Logger()
	logger.Info().Msg("created user in backend")

	return user, nil
}

func (b *Client) DeleteUser(c context.Context, token string, userId int64) error {
	c, span := otel.Tracer.Start(c, "BackendClient DeleteUser")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "BackendClient DeleteUser").
		Int64(log.KeyUserID, userId).
		Logger()

	c, cancel := context.WithTimeout(c, b.cfg.RequestTimeout)
	defer cancel()

	logger = logger.With().Str(log.KeyProcess, "deleting user in backend").Logger()
	logger.Info().Msg("deleting user in backend")
	req, err := b.newRequest(c, http.MethodDelete, fmt.Sprintf("/users/%d", userId), nil)
	if err != nil {
		err = fmt.Errorf("failed creating user request with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	req.Header.Add(inHttp.HeaderAuthorization, "Bearer "+token)
	resp, err := b.client.Do(req)
	if err != nil {
		err = fmt.Errorf("failed deleting user with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		err = fmt.Errorf("failed deleting user with error=%s", message(resp))
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("deleted user in backend")

	return nil
}

func (b *Client) FetchKpi(c context.Context, token string) (Kpi, error) {
	kpi := Kpi{}
	err := b.getReport(c, token, "/reports/kpi", &kpi)
	return kpi, err
}

func (b *Client) FetchSalesChart(c context.Context, token string) ([]ChartPoint, error) {
	points := []ChartPoint{}
	err := b.getReport(c, token, "/reports/chart", &points)
	return points, err
}

func (b *Client) FetchTopProducts(c context.Context, token string) ([]TopProduct, error) {
	top := []TopProduct{}
	err := b.getReport(c, token, "/reports/top-products", &top)
	return top, err
}
