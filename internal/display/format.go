// Package display contains the headless display of the client: a writer
// backed deals container, the page navigator and the deals formatter shared
// with the terminal UI.
package display

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-deal-watch/internal/app"
	"github.com/MKhiriev/go-deal-watch/internal/utils"
	"github.com/MKhiriev/go-deal-watch/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	dealTitleStyle = lipgloss.NewStyle().Bold(true)
	dealStoreStyle = lipgloss.NewStyle().Faint(true)
	dealPriceStyle = lipgloss.NewStyle().Bold(true)
	emptyStyle     = lipgloss.NewStyle().Italic(true)
)

// Keys looked up, in order, to label a deal. None of them is required.
var (
	titleKeys = []string{"title", "product", "name"}
	storeKeys = []string{"store", "shop"}
	priceKeys = []string{"price"}
)

// FormatDeals renders a deals snapshot as text, one deal per line.
//
// A list is rendered item by item; an object holding a "deals" list is
// rendered as that list; any other value is rendered as compact JSON. Items
// that expose none of the well-known keys are rendered as compact JSON too.
func FormatDeals(deals models.Deals) string {
	items, ok := dealItems(deals)
	if !ok {
		return compactJSON(deals)
	}
	if len(items) == 0 {
		return emptyStyle.Render(app.MsgNoDeals)
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "• "+formatDeal(item))
	}
	return strings.Join(lines, "\n")
}

// CountDeals returns the number of deals in a snapshot, or -1 when the
// snapshot is not a list.
func CountDeals(deals models.Deals) int {
	items, ok := dealItems(deals)
	if !ok {
		return -1
	}
	return len(items)
}

func dealItems(deals models.Deals) ([]any, bool) {
	switch v := deals.(type) {
	case nil:
		return nil, true
	case []any:
		return v, true
	case map[string]any:
		if inner, ok := v["deals"].([]any); ok {
			return inner, true
		}
	}
	return nil, false
}

func formatDeal(item any) string {
	fields, ok := item.(map[string]any)
	if !ok {
		return compactJSON(item)
	}

	title, hasTitle := lookup(fields, titleKeys)
	store, hasStore := lookup(fields, storeKeys)
	price, hasPrice := lookup(fields, priceKeys)
	if !hasTitle && !hasStore && !hasPrice {
		return compactJSON(item)
	}

	parts := make([]string, 0, 3)
	if hasTitle {
		parts = append(parts, dealTitleStyle.Render(title))
	}
	if hasStore {
		parts = append(parts, dealStoreStyle.Render("@ "+store))
	}
	if hasPrice {
		parts = append(parts, dealPriceStyle.Render(price))
	}
	return strings.Join(parts, "  ")
}

func lookup(fields map[string]any, keys []string) (string, bool) {
	for _, k := range keys {
		v, ok := fields[k]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case string:
			if t != "" {
				return t, true
			}
		case float64:
			return formatNumber(t), true
		default:
			return compactJSON(t), true
		}
	}
	return "", false
}

func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%.2f", f)
}

func compactJSON(v any) string {
	b, err := utils.JSON.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
