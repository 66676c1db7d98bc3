package cloak

import (
	"hash/fnv"

	"github.com/IliaW/cloak-api/internal/model"
)

// RouteTarget is the dispatcher output. Exactly one of Content or RedirectUrl
// is populated; the edge worker proxies content or issues a redirect based on
// which field it finds.
type RouteTarget struct {
	Content     string `json:"content,omitempty"`
	ContentType string `json:"content_type,omitempty"`
	RedirectUrl string `json:"url,omitempty"`
}

// DispatchContent maps a decision onto a campaign's literal pages. A blocked
// decision serves the white page; a block is never a hard failure.
func DispatchContent(decision string, campaign *model.Campaign) RouteTarget {
	content := campaign.WhiteContent
	if decision == model.DecisionBlack {
		content = campaign.BlackContent
	}
	return RouteTarget{Content: content, ContentType: "text/html"}
}

// DispatchRedirect maps a decision onto destination URLs. When a B variant is
// configured the client IP hash picks the variant, so a given client always
// lands on the same black page across calls.
func DispatchRedirect(decision, clientIP, whiteUrl, blackUrlA, blackUrlB string) RouteTarget {
	if decision != model.DecisionBlack {
		return RouteTarget{RedirectUrl: whiteUrl}
	}
	if blackUrlB != "" && splitVariant(clientIP) == 1 {
		return RouteTarget{RedirectUrl: blackUrlB}
	}
	return RouteTarget{RedirectUrl: blackUrlA}
}

func splitVariant(clientIP string) int {
	h := fnv.New32a()
	h.Write([]byte(clientIP))
	return int(h.Sum32() % 2)
}
