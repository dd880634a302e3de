package push

import (
	"context"
	"log/slog"

	"courier/config"
	"courier/internal/domain/constants"
	"courier/internal/domain/service"
	"courier/internal/errors"

	"go.uber.org/fx"
)

// GatewayParams holds dependencies for the push gateway, injected by Fx
type GatewayParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewGateway builds the gateway named by push.provider; empty means auto
func NewGateway(params GatewayParams) (service.PushGateway, error) {
	cfg := params.Config.Push
	if cfg == nil {
		cfg = &config.PushConfig{}
	}
	logger := params.Logger

	newExpo := func() service.PushGateway {
		return NewExpoGateway(cfg.ExpoURL, cfg.AccessToken, cfg.Timeout, logger)
	}

	newFirebase := func() (service.PushGateway, error) {
		fb := params.Config.Firebase
		if fb == nil {
			return nil, errors.New("firebase config is required for firebase push")
		}

		return NewFirebaseGateway(params.Ctx, fb.ProjectID, fb.CredentialsPath, logger)
	}

	switch cfg.Provider {
	case constants.PushProviderExpo:
		logger.Info("Using Expo push gateway", slog.String("url", cfg.ExpoURL))

		return newExpo(), nil

	case constants.PushProviderFirebase:
		logger.Info("Using Firebase push gateway")

		return newFirebase()

	case "", constants.PushProviderAuto:
		var fcm service.PushGateway
		if params.Config.Firebase != nil {
			gw, err := newFirebase()
			if err != nil {
				return nil, err
			}
			fcm = gw
		} else {
			logger.Warn("Firebase not configured, raw FCM tokens cannot be delivered")
		}
		logger.Info("Using routing push gateway", slog.Bool("firebase", fcm != nil))

		return NewRoutingGateway(newExpo(), fcm), nil

	default:
		return nil, errors.Errorf("unknown push provider: %s", cfg.Provider)
	}
}
