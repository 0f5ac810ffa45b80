package proxy

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"resty.dev/v3"
)

// ProxySupplier hands out outbound proxies with round-robin selection
type ProxySupplier interface {
	Get() string
	Len() int
}

type proxySupplier struct {
	proxies []string
	current int
	mutex   sync.Mutex
}

// NewProxySupplier checks every proxy against testURL, one at a time, and
// keeps the ones that answer with a 2xx. An empty list yields a supplier
// whose Get always returns "".
func NewProxySupplier(ctx context.Context, proxies []string, testURL string, timeout time.Duration) ProxySupplier {
	if len(proxies) == 0 {
		return &proxySupplier{proxies: []string{}}
	}

	log.Infof("🔄 Testing %d proxies against %s...", len(proxies), testURL)

	validProxies := make([]string, 0, len(proxies))
	for i, proxyURL := range proxies {
		log.Debugf("🔄 Testing proxy %d/%d: %s", i+1, len(proxies), proxyURL)

		if isProxyValid(ctx, proxyURL, testURL, timeout) {
			validProxies = append(validProxies, proxyURL)
			log.Infof("✅ Proxy %s is working", proxyURL)
		} else {
			log.Infof("❌ Proxy %s is not working, skipping", proxyURL)
		}
	}

	log.Infof("✅ ProxySupplier initialized with %d working proxies out of %d tested", len(validProxies), len(proxies))

	return &proxySupplier{proxies: validProxies}
}

// Get returns the next proxy URL in round-robin fashion
func (p *proxySupplier) Get() string {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if len(p.proxies) == 0 {
		return ""
	}

	proxy := p.proxies[p.current]
	p.current = (p.current + 1) % len(p.proxies)

	return proxy
}

func (p *proxySupplier) Len() int {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return len(p.proxies)
}

func isProxyValid(ctx context.Context, proxyURL, testURL string, timeout time.Duration) bool {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetProxy(proxyURL)
	defer client.Close()

	resp, err := client.R().
		SetContext(ctx).
		Get(testURL)

	if err != nil {
		log.Infof("Proxy test failed for %s: %v", proxyURL, err)
		return false
	}

	if !resp.IsSuccess() {
		log.Infof("Proxy test failed for %s with status: %s", proxyURL, resp.Status())
		return false
	}

	return true
}
