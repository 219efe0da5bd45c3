package fetch

import (
	"net/url"
	"strings"
)

// Board represents a known job board platform.
type Board string

const (
	// BoardGreenhouse is the Greenhouse ATS platform
	BoardGreenhouse Board = "greenhouse"
	// BoardLever is the Lever ATS platform
	BoardLever Board = "lever"
	// BoardWorkday is the Workday ATS platform
	BoardWorkday Board = "workday"
	// BoardLinkedIn is the LinkedIn jobs surface
	BoardLinkedIn Board = "linkedin"
	// BoardUnknown is an unrecognized platform
	BoardUnknown Board = "unknown"
)

// boardHosts maps host substrings to boards, checked in order.
var boardHosts = []struct {
	fragment string
	board    Board
}{
	{"greenhouse.io", BoardGreenhouse},
	{"lever.co", BoardLever},
	{"myworkdayjobs.com", BoardWorkday},
	{"workday.com", BoardWorkday},
	{"linkedin.com", BoardLinkedIn},
}

// DetectBoard identifies the job board platform from a posting URL.
func DetectBoard(urlStr string) Board {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return BoardUnknown
	}

	host := strings.ToLower(parsed.Host)
	for _, entry := range boardHosts {
		if strings.Contains(host, entry.fragment) {
			return entry.board
		}
	}
	return BoardUnknown
}

// genericPostingSelectors are tried for unrecognized boards.
var genericPostingSelectors = []string{
	".job-description",
	".job-content",
	"#job-description",
	".posting-content",
	".job-details",
	"[data-testid='job-description']",
	"main",
	"article",
	".content",
	"#content",
}

// ContentSelectors returns description selectors for a board.
func (b Board) ContentSelectors() []string {
	switch b {
	case BoardGreenhouse:
		return []string{
			".job__description.body",
			".job__description",
			".job-description__content",
			"#content",
		}
	case BoardLever:
		return []string{
			".posting-page",
			".posting-description",
			".content",
		}
	case BoardWorkday:
		return []string{
			"[data-automation-id='jobDescription']",
			".job-description",
		}
	case BoardLinkedIn:
		return []string{
			".description__text",
			".show-more-less-html__markup",
			"main",
		}
	default:
		return genericPostingSelectors
	}
}

// NoiseSelectors returns elements to strip before text extraction:
// application forms, EEO boilerplate, share widgets, consent banners.
func (b Board) NoiseSelectors() []string {
	common := []string{
		"form",
		".application-form",
		".apply-button-container",
		".voluntary-disclosure",
		".eeo-statement",
		".self-identification",
		".social-share",
		".share-buttons",
		".cookie-consent",
		".gdpr-notice",
	}

	switch b {
	case BoardGreenhouse:
		return append(common, ".application--wrapper", ".voluntary-self-id", ".post-apply")
	case BoardLever:
		return append(common, ".apply-section", ".posting-apply")
	case BoardWorkday:
		return append(common, "[data-automation-id='applyButton']", ".application-section")
	case BoardLinkedIn:
		return append(common, ".top-card-layout__cta-container", ".similar-jobs")
	default:
		return common
	}
}
