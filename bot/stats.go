package bot

import (
	"fmt"
	"strings"
	"time"

	tele "gopkg.in/telebot.v3"
	"go.uber.org/zap"

	"github.com/jurat11/BiteWise-sub000/i18n"
	"github.com/jurat11/BiteWise-sub000/logger"
	"github.com/jurat11/BiteWise-sub000/models"
	"github.com/jurat11/BiteWise-sub000/stats"
)

func (b *Bot) onStats(c tele.Context, u *models.User) error {
	ctx, cancel := handlerCtx()
	defer cancel()
	now := time.Now().UTC()

	view, err := stats.Today(ctx, b.st, u, now)
	if err != nil {
		logger.Error("today stats", zap.Int64("user_id", u.ID), zap.Error(err))
		return c.Send(i18n.T(u.Language, "try_again"))
	}
	all, err := stats.AllTime(ctx, b.st, u.ID)
	if err != nil {
		logger.Warn("all-time stats", zap.Int64("user_id", u.ID), zap.Error(err))
		all = &stats.AllTimeView{}
	}

	var sb strings.Builder
	sb.WriteString(todayMessage(u.Language, view))
	sb.WriteString("\n\n")
	sb.WriteString(bmiLine(u))
	if delta := u.WeightKG - u.InitialWeightKG; delta != 0 {
		sb.WriteString("\n")
		sb.WriteString(i18n.T(u.Language, "weight_progress", "delta", signedFloat(delta)))
	}
	sb.WriteString("\n\n")
	sb.WriteString(i18n.T(u.Language, "stats_alltime",
		"meals", fmt.Sprint(all.Meals),
		"water", fmt.Sprint(all.WaterML),
	))
	return c.Send(sb.String(), mainMenu(u.Language))
}

func todayMessage(lang models.Language, v *stats.View) string {
	t := v.Targets
	pb := func(total float64, target int) (string, string) {
		pct := stats.DisplayPct(total, target)
		return fmt.Sprint(pct), stats.Bar(pct)
	}
	calPct, calBar := pb(v.Calories, t.Calories)
	protPct, protBar := pb(v.ProteinG, t.ProteinG)
	carbPct, carbBar := pb(v.CarbsG, t.CarbsG)
	fatPct, fatBar := pb(v.FatG, t.FatG)
	waterPct, waterBar := pb(float64(v.WaterML), t.WaterML)

	return i18n.T(lang, "stats_header",
		"date", v.Date,
		"calories", trimFloat(v.Calories), "calories_target", fmt.Sprint(t.Calories),
		"calories_pct", calPct, "calories_bar", calBar,
		"protein", trimFloat(v.ProteinG), "protein_target", fmt.Sprint(t.ProteinG),
		"protein_pct", protPct, "protein_bar", protBar,
		"carbs", trimFloat(v.CarbsG), "carbs_target", fmt.Sprint(t.CarbsG),
		"carbs_pct", carbPct, "carbs_bar", carbBar,
		"fat", trimFloat(v.FatG), "fat_target", fmt.Sprint(t.FatG),
		"fat_pct", fatPct, "fat_bar", fatBar,
		"water", fmt.Sprint(v.WaterML), "water_target", fmt.Sprint(t.WaterML),
		"water_pct", waterPct, "water_bar", waterBar,
		"meals", fmt.Sprint(v.Meals),
	)
}

func bmiLine(u *models.User) string {
	bmi, catKey := stats.BMI(u.WeightKG, u.HeightCM)
	return i18n.T(u.Language, "bmi_line",
		"bmi", fmt.Sprintf("%.1f", bmi),
		"category", i18n.T(u.Language, catKey),
	)
}

func signedFloat(v float64) string {
	s := trimFloat(v)
	if v > 0 {
		return "+" + s
	}
	return s
}
