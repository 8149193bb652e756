package veritrans_integration

import (
	"context"

	"github.com/gorilla/mux"
	"github.com/rotisserie/eris"
	viCache "github.com/voxtmault/veritrans-integration/cache"
	viConfig "github.com/voxtmault/veritrans-integration/config"
	viInterfaces "github.com/voxtmault/veritrans-integration/interfaces"
	veritrans_request "github.com/voxtmault/veritrans-integration/veritrans/request"
	veritrans_security "github.com/voxtmault/veritrans-integration/veritrans/security"
	veritrans_service "github.com/voxtmault/veritrans-integration/veritrans/service"
)

// VeritransAPI bundles everything a merchant backend needs: the VT-Direct client, the
// notification parser and the signature helper.
type VeritransAPI struct {
	Config   *viConfig.InternalConfig
	Security viInterfaces.Security
	Ingress  viInterfaces.RequestIngress
	Gateway  viInterfaces.Gateway

	binCache *viCache.BinCache
}

// NewVeritransAPI wires the client from an already loaded config. binCache may be nil.
func NewVeritransAPI(cfg *viConfig.InternalConfig, binCache *viCache.BinCache) *VeritransAPI {
	security := veritrans_security.NewVTSecurity(&cfg.GatewayConfig)

	api := &VeritransAPI{
		Config:   cfg,
		Security: security,
		Ingress:  veritrans_request.NewVTIngress(security),
		binCache: binCache,
	}

	api.Gateway = veritrans_service.NewVTDirect(veritrans_request.NewVTEgress(&cfg.GatewayConfig), binCacheOrNil(binCache))

	return api
}

func binCacheOrNil(binCache *viCache.BinCache) viInterfaces.BinCache {
	if binCache == nil {
		return nil
	}

	return binCache
}

// NotificationRouter serves payment notifications on the configured notification path.
func (a *VeritransAPI) NotificationRouter(handler NotificationHandler) *mux.Router {
	return NewNotificationRouter(a.Config.NotificationPath, a.Ingress, handler, a.Config.MetricsEnabled)
}

// PurgeBinCache drops every cached BIN lookup and returns the number of removed entries.
func (a *VeritransAPI) PurgeBinCache(ctx context.Context) (int64, error) {
	if a.binCache == nil {
		return 0, eris.New("bin cache is not configured")
	}

	return a.binCache.Purge(ctx)
}
