package notification

import (
	"fmt"
	"strings"

	"github.com/muralinkl/stocks-option-screener/internal/execution"
	"github.com/muralinkl/stocks-option-screener/internal/model"
)

// ScreenSummary builds an alert for a completed screening pass, listing
// the strongest directional picks first.
func ScreenSummary(signals []model.StockSignal, top int) Alert {
	bullish, bearish := 0, 0
	var lines []string
	for _, sig := range signals {
		switch sig.Trend {
		case model.TrendBullish:
			bullish++
		case model.TrendBearish:
			bearish++
		}
		if sig.Trend != model.TrendNeutral && len(lines) < top {
			lines = append(lines, fmt.Sprintf("%s %s @ %.2f (strength %.2f%%)",
				sig.Symbol, sig.Trend, sig.CurrentPrice, sig.IntradayStrengthPct))
		}
	}

	return Alert{
		Level: AlertInfo,
		Title: "Screening pass complete",
		Message: fmt.Sprintf("%d signals: %d bullish, %d bearish, %d neutral\n%s",
			len(signals), bullish, bearish, len(signals)-bullish-bearish,
			strings.Join(lines, "\n")),
		Data: map[string]interface{}{
			"total":   len(signals),
			"bullish": bullish,
			"bearish": bearish,
		},
	}
}

// TradeBatchSummary builds an alert for a completed bracket batch. The
// level escalates when any buy leg was left without its target.
func TradeBatchSummary(results []execution.TradeResult) Alert {
	placed, failed, skipped, unhedged := 0, 0, 0, 0
	var lines []string
	for _, res := range results {
		switch res.Status {
		case execution.StatusSuccess:
			placed++
			lines = append(lines, fmt.Sprintf("%s %s %s: buy %.2f target %.2f",
				res.Symbol, res.Trend, res.TradingSymbol, res.BuyPrice, res.TargetPrice))
		case execution.StatusSkipped:
			skipped++
		case execution.StatusTargetFailed:
			unhedged++
			lines = append(lines, fmt.Sprintf("%s: buy %s OPEN WITHOUT TARGET: %s",
				res.Symbol, res.BuyOrderID, res.Error))
		default:
			failed++
		}
	}

	level := AlertInfo
	if failed > 0 {
		level = AlertWarning
	}
	if unhedged > 0 {
		level = AlertCritical
	}
	return Alert{
		Level: level,
		Title: "Bracket trade batch complete",
		Message: fmt.Sprintf("%d placed, %d failed, %d skipped, %d unhedged\n%s",
			placed, failed, skipped, unhedged, strings.Join(lines, "\n")),
		Data: map[string]interface{}{
			"placed":   placed,
			"failed":   failed,
			"skipped":  skipped,
			"unhedged": unhedged,
		},
	}
}
