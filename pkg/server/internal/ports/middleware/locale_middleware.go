package middleware

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// languageLocalsKey is the Locals key under which the resolved language code
// is stored.
const languageLocalsKey = "metadata:language"

// localeQueryParam and localeCookie allow requests to pin a language
// explicitly; the query parameter wins and refreshes the cookie.
const (
	localeQueryParam = "hl"
	localeCookie     = "hl"
)

// LocaleMiddlewareConfig defines the language set the locale middleware
// resolves against.
type LocaleMiddlewareConfig struct {
	Supported []string // Language codes the metadata configuration provides tables for.
	Fallback  string   // Language used when nothing acceptable is requested.
}

// LocaleMiddleware resolves the request language: explicit ?hl= query
// parameter first, then the hl cookie, then Accept-Language content
// negotiation, then the configured fallback. The resolved code is stored for
// LanguageFrom and surfaced in the Content-Language response header.
func LocaleMiddleware(cfg LocaleMiddlewareConfig) fiber.Handler {
	supported := make(map[string]struct{}, len(cfg.Supported))
	for _, l := range cfg.Supported {
		supported[strings.ToLower(l)] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		lang := ""
		if q := strings.ToLower(c.Query(localeQueryParam)); q != "" {
			if _, ok := supported[q]; ok {
				lang = q
				c.Cookie(&fiber.Cookie{Name: localeCookie, Value: q, Path: "/"})
			}
		}
		if lang == "" {
			if v := strings.ToLower(c.Cookies(localeCookie)); v != "" {
				if _, ok := supported[v]; ok {
					lang = v
				}
			}
		}
		if lang == "" {
			lang = negotiate(c.Get(fiber.HeaderAcceptLanguage), supported, cfg.Fallback)
		}

		c.Locals(languageLocalsKey, lang)
		c.Set(fiber.HeaderContentLanguage, lang)
		return c.Next()
	}
}

// LanguageFrom returns the language resolved for the request, or an empty
// string if the locale middleware is not installed.
func LanguageFrom(c *fiber.Ctx) string {
	lang, _ := c.Locals(languageLocalsKey).(string)
	return lang
}

// negotiate chooses the best supported base language from an Accept-Language
// header value, honoring q-values with header order as the tie-breaker.
func negotiate(acceptLang string, supported map[string]struct{}, fallback string) string {
	type langPref struct {
		base string
		q    float64
		pos  int
	}
	prefs := make([]langPref, 0, 8)
	for i, raw := range strings.Split(acceptLang, ",") {
		p := strings.TrimSpace(raw)
		if p == "" {
			continue
		}
		q := 1.0
		if sc := strings.IndexByte(p, ';'); sc != -1 {
			params := strings.TrimSpace(p[sc+1:])
			p = strings.TrimSpace(p[:sc])
			if strings.HasPrefix(params, "q=") {
				if v, err := parseQValue(strings.TrimPrefix(params, "q=")); err == nil {
					q = v
				}
			}
		}
		base := p
		if dash := strings.IndexByte(p, '-'); dash != -1 {
			base = p[:dash]
		}
		prefs = append(prefs, langPref{base: strings.ToLower(base), q: q, pos: i})
	}

	sort.SliceStable(prefs, func(i, j int) bool {
		if prefs[i].q == prefs[j].q {
			return prefs[i].pos < prefs[j].pos
		}
		return prefs[i].q > prefs[j].q
	})
	for _, lp := range prefs {
		if _, ok := supported[lp.base]; ok {
			return lp.base
		}
	}
	return fallback
}

// parseQValue parses a qvalue per RFC 7231, clamped to [0.0, 1.0].
func parseQValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return v, nil
}
