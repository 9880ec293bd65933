package reports

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/farmasystem/pos/internal"
	"github.com/farmasystem/pos/internal/backend"
	inErrors "github.com/farmasystem/pos/internal/errors"
	"github.com/farmasystem/pos/internal/log"
	"github.com/farmasystem/pos/internal/otel"
)

// Service passes dashboard figures through from the backend. The terminal
// renders them as-is and owns no aggregation of its own.
type Service struct {
	backend *backend.Client
}

func NewService(backendClient *backend.Client) *Service {
	return &Service{backend: backendClient}
}

func (s *Service) token(c context.Context) (string, error) {
	token, err := internal.JwtTokenFromContext(c)
	if err != nil {
		return "", err
	}
	return token.Raw, nil
}

func (s *Service) FindKpi(c context.Context) (backend.Kpi, error) {
	c, span := otel.Tracer.Start(c, "ReportService FindKpi")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ReportService FindKpi").
		Logger()

	token, err := s.token(c)
	if err != nil {
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return backend.Kpi{}, err
	}

	c = logger.WithContext(c)
	kpi, err := s.backend.FetchKpi(c, token)
	if err != nil {
		err = fmt.Errorf("failed fetching kpi with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return backend.Kpi{}, err
	}

	return kpi, nil
}

func (s *Service) FindSalesChart(c context.Context) ([]backend.ChartPoint, error) {
	c, span := otel.Tracer.Start(c, "ReportService FindSalesChart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ReportService FindSalesChart").
		Logger()

	token, err := s.token(c)
	if err != nil {
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}

	c = logger.WithContext(c)
	points, err := s.backend.FetchSalesChart(c, token)
	if err != nil {
		err = fmt.Errorf("failed fetching sales chart with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}

	return points, nil
}

func (s *Service) FindTopProducts(c context.Context) ([]backend.TopProduct, error) {
	c, span := otel.Tracer.Start(c, "ReportService FindTopProducts")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ReportService FindTopProducts").
		Logger()

	token, err := s.token(c)
	if err != nil {
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}

	c = logger.WithContext(c)
	top, err := s.backend.FetchTopProducts(c, token)
	if err != nil {
		err = fmt.Errorf("failed fetching top products with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}

	return top, nil
}
