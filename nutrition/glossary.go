package nutrition

import (
	"fmt"
	"strings"

	"github.com/jurat11/BiteWise-sub000/models"
)

// glossary holds, per language, the nutrient terms looked for in the model
// reply and the section headers for the three prose parts. The prompt is
// built from the same table so the parser always matches what was asked for.
type glossary struct {
	calories, protein, carbs, fat, sodium, fiber, sugar []string
	positive, note, recommendation                      string
	prompt string
}

var glossaries = map[models.Language]glossary{
	models.LangEN: {
		calories:       []string{"calories", "calorie"},
		protein:        []string{"protein"},
		carbs:          []string{"carbs", "carbohydrate"},
		fat:            []string{"fat"},
		sodium:         []string{"sodium"},
		fiber:          []string{"fiber", "fibre"},
		sugar:          []string{"sugar"},
		positive:       "positive effect",
		note:           "health note",
		recommendation: "recommendation",
		prompt: `%s
Reply strictly line by line in this exact format, numbers with units:
🔥 Calories: <number> kcal
🥩 Protein: <number> g
🍞 Carbs: <number> g
🥑 Fat: <number> g
🧂 Sodium: <number> mg
🌾 Fiber: <number> g
🍬 Sugar: <number> g
📊 Daily: <number>%% of a %d kcal day
Positive effect: <one sentence>
Health note: <one sentence>
Recommendation: <one sentence>
Never answer zero for drinks other than plain water or for regional dishes — always give your best estimate.`,
	},
	models.LangRU: {
		calories:       []string{"калори"},
		protein:        []string{"белк", "белок"},
		carbs:          []string{"углевод"},
		fat:            []string{"жир"},
		sodium:         []string{"натри"},
		fiber:          []string{"клетчатк"},
		sugar:          []string{"сахар"},
		positive:       "польза",
		note:           "примечание",
		recommendation: "рекомендация",
		prompt: `%s
Отвечай строго построчно в этом формате, числа с единицами:
🔥 Калории: <число> ккал
🥩 Белки: <число> г
🍞 Углеводы: <число> г
🥑 Жиры: <число> г
🧂 Натрий: <число> мг
🌾 Клетчатка: <число> г
🍬 Сахар: <число> г
📊 Дневная норма: <число>%% от %d ккал в день
Польза: <одно предложение>
Примечание: <одно предложение>
Рекомендация: <одно предложение>
Никогда не отвечай нулём для напитков, кроме чистой воды, и для региональных блюд — всегда давай оценку.`,
	},
	models.LangUZ: {
		calories:       []string{"kaloriya"},
		protein:        []string{"oqsil"},
		carbs:          []string{"uglevod"},
		fat:            []string{"yog"},
		sodium:         []string{"natriy"},
		fiber:          []string{"tola"},
		sugar:          []string{"shakar"},
		positive:       "foydasi",
		note:           "eslatma",
		recommendation: "tavsiya",
		prompt: `%s
Qat'iy ravishda qatorma-qator shu formatda javob ber, raqamlar birliklari bilan:
🔥 Kaloriya: <son> kkal
🥩 Oqsil: <son> g
🍞 Uglevod: <son> g
🥑 Yog': <son> g
🧂 Natriy: <son> mg
🌾 Tola: <son> g
🍬 Shakar: <son> g
📊 Kunlik: %d kkal kunning <son>%% qismi
Foydasi: <bitta gap>
Eslatma: <bitta gap>
Tavsiya: <bitta gap>
Oddiy suvdan boshqa ichimliklar va milliy taomlar uchun hech qachon nol deb javob berma — har doim taxminiy baho ber.`,
	},
}

var identifyLead = map[models.Language]struct{ photo, text string }{
	models.LangEN: {
		photo: "Identify the food in this photo (meal: %s) and estimate its nutrition.",
		text:  "Estimate the nutrition of this food (meal: %s): %s.",
	},
	models.LangRU: {
		photo: "Определи еду на этом фото (приём пищи: %s) и оцени её пищевую ценность.",
		text:  "Оцени пищевую ценность этой еды (приём пищи: %s): %s.",
	},
	models.LangUZ: {
		photo: "Bu rasmdagi taomni aniqla (ovqat: %s) va ozuqaviy qiymatini baholab ber.",
		text:  "Bu taomning ozuqaviy qiymatini baholab ber (ovqat: %s): %s.",
	},
}

func activeGlossary(lang models.Language) glossary {
	g, ok := glossaries[lang]
	if !ok {
		g = glossaries[models.LangEN]
	}
	return g
}

// BuildPrompt composes the analyzer prompt for the given language. hasImage
// selects the identification lead; dailyCalories lets the model phrase a
// percent-of-day figure (recomputed locally afterwards anyway).
func BuildPrompt(lang models.Language, kind models.MealKind, text string, hasImage bool, dailyCalories int) string {
	g := activeGlossary(lang)
	lead, ok := identifyLead[lang]
	if !ok {
		lead = identifyLead[models.LangEN]
	}

	var head string
	if hasImage {
		head = fmt.Sprintf(lead.photo, string(kind))
		if strings.TrimSpace(text) != "" {
			head += " " + fmt.Sprintf(lead.text, string(kind), strings.TrimSpace(text))
		}
	} else {
		head = fmt.Sprintf(lead.text, string(kind), strings.TrimSpace(text))
	}
	return fmt.Sprintf(g.prompt, head, dailyCalories)
}
