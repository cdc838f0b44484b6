package i18n

var en = map[string]string{
	// general
	"choose_language": "👋 Welcome to BiteWise!\n\nPlease choose your language:\nПожалуйста, выберите язык:\nIltimos, tilni tanlang:",
	"main_menu":       "🏠 Main menu. What would you like to do?",
	"canceled":        "❌ Canceled. Back to the main menu.",
	"help":            "ℹ️ <b>BiteWise</b> tracks your meals and water.\n\n/logmeal — log a meal (text or photo)\n/water — log water\n/stats — today's statistics\n/settings — profile and reminders\n/cancel — cancel the current action",
	"try_again":       "⚠️ Something went wrong, please try again.",
	"not_registered":  "Please run /start to set up your profile first.",

	// main menu buttons
	"btn_log_meal":  "🍽 Log meal",
	"btn_log_water": "💧 Log water",
	"btn_stats":     "📊 Stats",
	"btn_settings":  "⚙️ Settings",
	"btn_help":      "ℹ️ Help",

	// registration
	"ask_name":         "What's your name?",
	"invalid_name":     "Please enter a name between 2 and 50 characters.",
	"ask_age":          "How old are you?",
	"invalid_age":      "Please enter an age between 0 and 120.",
	"ask_height":       "What's your height in cm?",
	"invalid_height":   "Please enter a height between 50 and 250 cm.",
	"ask_weight":       "What's your weight in kg?",
	"invalid_weight":   "Please enter a weight between 20 and 300 kg.",
	"ask_bodyfat":      "What's your body fat percentage? (optional — tap Skip if you don't know)",
	"invalid_bodyfat":  "Please enter a body fat percentage between 3 and 70, or tap Skip.",
	"btn_skip":         "Skip ⏭",
	"ask_gender":       "What's your gender?",
	"btn_male":         "👨 Male",
	"btn_female":       "👩 Female",
	"ask_timezone":     "What's your time zone? Send an IANA name like <code>Asia/Tashkent</code> or <code>Europe/Moscow</code>.",
	"invalid_timezone": "I don't know that time zone. Try something like <code>Asia/Tashkent</code>.",
	"ask_goal":         "What's your main goal?",
	"ask_activity":     "How active are you?",

	"goal_lose_weight":   "⚖️ Lose weight",
	"goal_gain_muscle":   "💪 Gain muscle",
	"goal_eat_healthier": "🥦 Eat healthier",
	"goal_look_younger":  "✨ Look younger",
	"goal_other_goal":    "🎯 Other",

	"activity_sedentary":         "🪑 Sedentary",
	"activity_lightly_active":    "🚶 Lightly active",
	"activity_moderately_active": "🏃 Moderately active",
	"activity_very_active":       "🏋️ Very active",
	"activity_super_active":      "🔥 Super active",

	"registration_done": "✅ You're all set, {name}!\n\nYour daily targets:\n🔥 Calories: <b>{calories}</b> kcal\n🥩 Protein: <b>{protein}</b> g\n🍞 Carbs: <b>{carbs}</b> g\n🥑 Fat: <b>{fat}</b> g\n💧 Water: <b>{water}</b> ml",

	// meal logging
	"choose_meal_type": "🍽 What kind of meal is it?",
	"meal_breakfast":   "🌅 Breakfast",
	"meal_lunch":       "🌞 Lunch",
	"meal_dinner":      "🌙 Dinner",
	"meal_snack":       "🍎 Snack",
	"send_meal":        "Describe your meal or send a photo of it.",
	"analyzing":        "🔍 Analyzing your meal...",
	"analysis_failed":  "⚠️ I couldn't analyze this meal, so I logged it with rough estimates.",
	"meal_logged_header": "✅ <b>{kind}</b> logged!",

	"label_calories":       "🔥 Calories",
	"label_protein":        "🥩 Protein",
	"label_carbs":          "🍞 Carbs",
	"label_fat":            "🥑 Fat",
	"label_sodium":         "🧂 Sodium",
	"label_fiber":          "🌾 Fiber",
	"label_sugar":          "🍬 Sugar",
	"label_daily_pct":      "📊 {pct}% of your daily calories",
	"label_positive":       "💚 Positive effect",
	"label_note":           "⚠️ Health note",
	"label_recommendation": "💡 Recommendation",

	// water logging
	"choose_water_amount":      "💧 How much water did you drink?",
	"btn_custom_amount":        "✏️ Custom",
	"ask_custom_amount":        "Enter the amount in ml (1–5000):",
	"invalid_water_amount":     "Please enter a whole number between 1 and 5000 ml.",
	"water_logged":             "💧 Logged <b>{amount}</b> ml. Today: <b>{total}</b> ml of {target} ml.",
	"water_cooldown_notice":    "🕐 That's two drinks within five minutes — pace yourself!",
	"water_daily_limit_notice": "🌊 You're past 5 liters today. That's a lot — listen to your body.",

	// stats
	"stats_header": "📊 <b>Today, {date}</b>\n\n🔥 Calories: {calories}/{calories_target} kcal ({calories_pct}%)\n{calories_bar}\n🥩 Protein: {protein}/{protein_target} g ({protein_pct}%)\n{protein_bar}\n🍞 Carbs: {carbs}/{carbs_target} g ({carbs_pct}%)\n{carbs_bar}\n🥑 Fat: {fat}/{fat_target} g ({fat_pct}%)\n{fat_bar}\n💧 Water: {water}/{water_target} ml ({water_pct}%)\n{water_bar}\n\n🍽 Meals today: {meals}",
	"stats_alltime": "📈 <b>All time</b>\n🍽 Meals logged: {meals}\n💧 Water logged: {water} ml",
	"bmi_line":      "🧍 BMI: <b>{bmi}</b> — {category}",
	"bmi_underweight": "underweight",
	"bmi_normal":      "normal",
	"bmi_overweight":  "overweight",
	"bmi_obese":       "obese",
	"weight_progress": "⚖️ Weight change since start: <b>{delta}</b> kg",

	// settings
	"settings_menu":       "⚙️ Settings — what do you want to change?",
	"btn_change_language": "🌐 Language",
	"btn_edit_profile":    "👤 Profile",
	"btn_edit_reminders":  "⏰ Reminders",
	"btn_edit_bodyfat":    "📉 Body fat",
	"edit_profile_menu":   "👤 Which field do you want to edit?",
	"btn_edit_name":       "Name",
	"btn_edit_age":        "Age",
	"btn_edit_height":     "Height",
	"btn_edit_weight":     "Weight",
	"btn_edit_goal":       "Goal",
	"btn_edit_activity":   "Activity",
	"btn_edit_timezone":   "Time zone",
	"profile_updated":     "✅ Profile updated.",
	"language_changed":    "✅ Language changed.",
	"targets_delta":       "🎯 Your daily targets changed:\n🔥 Calories: {cal_before} → <b>{cal_after}</b> kcal\n🥩 Protein: {protein_before} → <b>{protein_after}</b> g\n🍞 Carbs: {carbs_before} → <b>{carbs_after}</b> g\n🥑 Fat: {fat_before} → <b>{fat_after}</b> g",
	"reminders_menu":      "⏰ Tap a channel to toggle it:",
	"reminders_updated":   "✅ Reminders updated.",
	"rem_water":           "💧 Water",
	"rem_meal":            "🍽 Meals",
	"rem_motivational":    "💬 Motivation",
	"rem_breakfast":       "🌅 Breakfast",
	"rem_lunch":           "🌞 Lunch",
	"rem_dinner":          "🌙 Dinner",

	// streaks and badges
	"streak_water":     "🔥 {count}-day water streak — keep it flowing!",
	"streak_meal":      "🔥 {count}-day logging streak — great consistency!",
	"badge_water_5_days": "🏅 Badge earned: <b>Hydration Hero</b> — 5-day water streak!",
	"badge_50_meals":     "🏅 Badge earned: <b>Food Chronicler</b> — 50 meals logged!",

	// scheduled messages
	"reminder_water":     "💧 Time for a glass of water!",
	"reminder_breakfast": "🌅 Good morning! Don't forget to log your breakfast.",
	"reminder_lunch":     "🌞 Lunchtime! Log your meal when you're done.",
	"reminder_dinner":    "🌙 Dinner time — remember to log it.",
	"motivation_daily":   "💬 Small steps every day add up. You're doing great!",
	"weekly_summary":     "📅 <b>Your week</b>\n🍽 Meals logged: {meals}\n🔥 Average calories/day: {avg_calories}\n💧 Water: {water} ml",
	"weight_prompt":      "⚖️ Weekly check-in: what's your current weight in kg?",
	"weight_updated":     "✅ Weight saved. Change since start: <b>{delta}</b> kg.",

	// admin
	"broadcast_done": "📣 Broadcast sent to {count} users.",
}
