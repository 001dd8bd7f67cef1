package rpcserver

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-gonic/gin"
	"github.com/sat20-labs/txstage/common"
	"github.com/sat20-labs/txstage/docs"
	rpcwire "github.com/sat20-labs/txstage/rpcserver/wire"
	"gopkg.in/yaml.v2"
)

type APIDoc struct {
	apiConfMutex sync.RWMutex
	api          *rpcwire.API
	limit        *limiter.Limiter
}

func InitApiDoc(swaggerHost, schemes, basePath string) {
	docs.SwaggerInfo.Title = "txstage api"
	docs.SwaggerInfo.Version = "v" + common.TXSTAGE_VERSION
	docs.SwaggerInfo.Schemes = nil
	schemeList := strings.Split(schemes, ",")
	for _, scheme := range schemeList {
		if scheme == "http" {
			docs.SwaggerInfo.Schemes = append(docs.SwaggerInfo.Schemes, "http")
		} else if scheme == "https" {
			docs.SwaggerInfo.Schemes = append(docs.SwaggerInfo.Schemes, "https")
		}
	}
	if len(docs.SwaggerInfo.Schemes) == 0 {
		docs.SwaggerInfo.Schemes = []string{"http"}
	}

	docs.SwaggerInfo.Description = "transaction staging over a standard and a committed pool"
	docs.SwaggerInfo.Host = swaggerHost
	docs.SwaggerInfo.BasePath = basePath
}

// InitApiConf copies the rate limit settings out of the service config.
func (s *APIDoc) InitApiConf(cfgData any) error {
	if cfgData == nil {
		return nil
	}
	raw, err := yaml.Marshal(cfgData)
	if err != nil {
		return err
	}
	api := &rpcwire.API{}
	err = yaml.Unmarshal(raw, api)
	if err != nil {
		return err
	}

	s.apiConfMutex.Lock()
	defer s.apiConfMutex.Unlock()
	s.api = api
	s.limit = nil
	if api.RateLimit.PerSecond > 0 {
		lmt := tollbooth.NewLimiter(float64(api.RateLimit.PerSecond), &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
		if api.RateLimit.Burst > 0 {
			lmt.SetBurst(api.RateLimit.Burst)
		}
		lmt.SetTokenBucketExpirationTTL(time.Minute)
		s.limit = lmt
	}
	return nil
}

// ApplyApiConf limits requests per client IP. Local addresses and the
// configured api paths and hosts are exempt.
func (s *APIDoc) ApplyApiConf(r *gin.Engine, basePath string) error {
	localIpList := make([]string, 0)
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return err
	}
	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if ok && ipNet.IP.To4() != nil {
			localIpList = append(localIpList, ipNet.IP.String())
		}
	}
	localIpList = append(localIpList, "localhost")

	r.Use(func(c *gin.Context) {
		s.apiConfMutex.RLock()
		api, lmt := s.api, s.limit
		s.apiConfMutex.RUnlock()
		if api == nil || lmt == nil {
			c.Next()
			return
		}

		for _, ip := range localIpList {
			if strings.Contains(c.Request.Host, ip) {
				c.Next()
				return
			}
		}
		for _, apiUrl := range api.NoLimitApiList {
			if basePath+apiUrl == c.Request.URL.Path {
				c.Next()
				return
			}
		}

		clientIp := c.ClientIP()
		common.Log.Debugf("rate limit client Ip: %s", clientIp)
		for _, host := range api.NoLimitHostList {
			if clientIp == host {
				c.Next()
				return
			}
		}

		httpError := tollbooth.LimitByKeys(lmt, []string{clientIp})
		if httpError != nil {
			c.JSON(http.StatusTooManyRequests, &rpcwire.BaseResp{Code: -1, Msg: "Rate limit exceeded"})
			c.Abort()
			return
		}
		c.Next()
	})

	return nil
}
