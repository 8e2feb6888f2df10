// internal/services/redirect_service.go
package services

import "strings"

// Redirect moves every path under From to the same place under To.
type Redirect struct {
	From string
	To   string
}

// DefaultRedirects keeps old category URLs working after they were renamed.
var DefaultRedirects = []Redirect{
	{From: "/roms/gba-roms", To: "/roms/gameboy-advance-roms"},
	{From: "/roms/3ds-roms", To: "/roms/nintendo-3ds-roms"},
	{From: "/roms/gamecube-roms", To: "/roms/nintendo-gamecube-roms"},
	{From: "/roms/playstation-3-roms/god-of-war-iii", To: "/roms/playstation-3-roms/god-of-war-iii-usa"},
}

type RedirectService struct {
	rules []Redirect
}

func NewRedirectService(rules []Redirect) *RedirectService {
	return &RedirectService{rules: rules}
}

// Resolve returns the new location for requestPath. A rule matches the
// exact path or anything below it; the first matching rule wins.
func (s *RedirectService) Resolve(requestPath string) (string, bool) {
	for _, rule := range s.rules {
		if requestPath == rule.From || strings.HasPrefix(requestPath, rule.From+"/") {
			return rule.To + strings.TrimPrefix(requestPath, rule.From), true
		}
	}
	return "", false
}
