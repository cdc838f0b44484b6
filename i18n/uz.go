package i18n

var uz = map[string]string{
	"main_menu":      "🏠 Asosiy menyu. Nima qilmoqchisiz?",
	"canceled":       "❌ Bekor qilindi. Asosiy menyuga qaytdik.",
	"help":           "ℹ️ <b>BiteWise</b> ovqatlanish va suv ichishingizni kuzatadi.\n\n/logmeal — ovqat yozish (matn yoki rasm)\n/water — suv yozish\n/stats — bugungi statistika\n/settings — profil va eslatmalar\n/cancel — joriy amalni bekor qilish",
	"try_again":      "⚠️ Xatolik yuz berdi, qayta urinib ko'ring.",
	"not_registered": "Avval /start buyrug'i bilan profil yarating.",

	"btn_log_meal":  "🍽 Ovqat yozish",
	"btn_log_water": "💧 Suv yozish",
	"btn_stats":     "📊 Statistika",
	"btn_settings":  "⚙️ Sozlamalar",
	"btn_help":      "ℹ️ Yordam",

	"ask_name":         "Ismingiz nima?",
	"invalid_name":     "Iltimos, 2 dan 50 gacha belgidan iborat ism kiriting.",
	"ask_age":          "Yoshingiz nechada?",
	"invalid_age":      "Iltimos, 0 dan 120 gacha yosh kiriting.",
	"ask_height":       "Bo'yingiz necha sm?",
	"invalid_height":   "Iltimos, 50 dan 250 sm gacha bo'y kiriting.",
	"ask_weight":       "Vazningiz necha kg?",
	"invalid_weight":   "Iltimos, 20 dan 300 kg gacha vazn kiriting.",
	"ask_bodyfat":      "Tana yog'i foizingiz qancha? (ixtiyoriy — bilmasangiz «O'tkazib yuborish»ni bosing)",
	"invalid_bodyfat":  "Iltimos, 3 dan 70 gacha foiz kiriting yoki «O'tkazib yuborish»ni bosing.",
	"btn_skip":         "O'tkazib yuborish ⏭",
	"ask_gender":       "Jinsingiz:",
	"btn_male":         "👨 Erkak",
	"btn_female":       "👩 Ayol",
	"ask_timezone":     "Vaqt mintaqangiz? IANA nomini yuboring, masalan <code>Asia/Tashkent</code>.",
	"invalid_timezone": "Bunday vaqt mintaqasini bilmayman. Masalan <code>Asia/Tashkent</code> deb yozing.",
	"ask_goal":         "Asosiy maqsadingiz nima?",
	"ask_activity":     "Qanchalik faolsiz?",

	"goal_lose_weight":   "⚖️ Vazn yo'qotish",
	"goal_gain_muscle":   "💪 Mushak orttirish",
	"goal_eat_healthier": "🥦 Sog'lom ovqatlanish",
	"goal_look_younger":  "✨ Yoshroq ko'rinish",
	"goal_other_goal":    "🎯 Boshqa",

	"activity_sedentary":         "🪑 Kam harakat",
	"activity_lightly_active":    "🚶 Yengil faollik",
	"activity_moderately_active": "🏃 O'rtacha faollik",
	"activity_very_active":       "🏋️ Yuqori faollik",
	"activity_super_active":      "🔥 Juda yuqori",

	"registration_done": "✅ Tayyor, {name}!\n\nKunlik me'yorlaringiz:\n🔥 Kaloriya: <b>{calories}</b> kkal\n🥩 Oqsil: <b>{protein}</b> g\n🍞 Uglevod: <b>{carbs}</b> g\n🥑 Yog': <b>{fat}</b> g\n💧 Suv: <b>{water}</b> ml",

	"choose_meal_type": "🍽 Bu qaysi ovqat?",
	"meal_breakfast":   "🌅 Nonushta",
	"meal_lunch":       "🌞 Tushlik",
	"meal_dinner":      "🌙 Kechki ovqat",
	"meal_snack":       "🍎 Yengil tamaddi",
	"send_meal":        "Taomni tasvirlab bering yoki rasmini yuboring.",
	"analyzing":        "🔍 Taomingizni tahlil qilyapman...",
	"analysis_failed":  "⚠️ Taomni tahlil qilib bo'lmadi, taxminiy qiymatlar bilan yozdim.",
	"meal_logged_header": "✅ <b>{kind}</b> yozildi!",

	"label_calories":       "🔥 Kaloriya",
	"label_protein":        "🥩 Oqsil",
	"label_carbs":          "🍞 Uglevod",
	"label_fat":            "🥑 Yog'",
	"label_sodium":         "🧂 Natriy",
	"label_fiber":          "🌾 Tola",
	"label_sugar":          "🍬 Shakar",
	"label_daily_pct":      "📊 Kunlik kaloriya me'yoringizning {pct}%",
	"label_positive":       "💚 Foydasi",
	"label_note":           "⚠️ E'tibor bering",
	"label_recommendation": "💡 Tavsiya",

	"choose_water_amount":      "💧 Qancha suv ichdingiz?",
	"btn_custom_amount":        "✏️ Boshqa",
	"ask_custom_amount":        "Miqdorni ml da kiriting (1–5000):",
	"invalid_water_amount":     "Iltimos, 1 dan 5000 ml gacha butun son kiriting.",
	"water_logged":             "💧 <b>{amount}</b> ml yozildi. Bugun: {target} ml dan <b>{total}</b> ml.",
	"water_cooldown_notice":    "🕐 Besh daqiqada ikki marta suv — shoshilmang!",
	"water_daily_limit_notice": "🌊 Bugun 5 litrdan oshdi. Bu ko'p — o'zingizni eshiting.",

	"stats_header": "📊 <b>Bugun, {date}</b>\n\n🔥 Kaloriya: {calories}/{calories_target} kkal ({calories_pct}%)\n{calories_bar}\n🥩 Oqsil: {protein}/{protein_target} g ({protein_pct}%)\n{protein_bar}\n🍞 Uglevod: {carbs}/{carbs_target} g ({carbs_pct}%)\n{carbs_bar}\n🥑 Yog': {fat}/{fat_target} g ({fat_pct}%)\n{fat_bar}\n💧 Suv: {water}/{water_target} ml ({water_pct}%)\n{water_bar}\n\n🍽 Bugungi ovqatlar: {meals}",
	"stats_alltime": "📈 <b>Umumiy</b>\n🍽 Yozilgan ovqatlar: {meals}\n💧 Ichilgan suv: {water} ml",
	"bmi_line":      "🧍 TVI: <b>{bmi}</b> — {category}",
	"bmi_underweight": "vazn yetishmaydi",
	"bmi_normal":      "me'yorda",
	"bmi_overweight":  "ortiqcha vazn",
	"bmi_obese":       "semizlik",
	"weight_progress": "⚖️ Boshidan beri vazn o'zgarishi: <b>{delta}</b> kg",

	"settings_menu":       "⚙️ Sozlamalar — nimani o'zgartiramiz?",
	"btn_change_language": "🌐 Til",
	"btn_edit_profile":    "👤 Profil",
	"btn_edit_reminders":  "⏰ Eslatmalar",
	"btn_edit_bodyfat":    "📉 Tana yog'i",
	"edit_profile_menu":   "👤 Qaysi maydonni o'zgartiramiz?",
	"btn_edit_name":       "Ism",
	"btn_edit_age":        "Yosh",
	"btn_edit_height":     "Bo'y",
	"btn_edit_weight":     "Vazn",
	"btn_edit_goal":       "Maqsad",
	"btn_edit_activity":   "Faollik",
	"btn_edit_timezone":   "Vaqt mintaqasi",
	"profile_updated":     "✅ Profil yangilandi.",
	"language_changed":    "✅ Til o'zgartirildi.",
	"targets_delta":       "🎯 Kunlik me'yorlaringiz o'zgardi:\n🔥 Kaloriya: {cal_before} → <b>{cal_after}</b> kkal\n🥩 Oqsil: {protein_before} → <b>{protein_after}</b> g\n🍞 Uglevod: {carbs_before} → <b>{carbs_after}</b> g\n🥑 Yog': {fat_before} → <b>{fat_after}</b> g",
	"reminders_menu":      "⏰ Kanalni yoqish/o'chirish uchun bosing:",
	"reminders_updated":   "✅ Eslatmalar yangilandi.",
	"rem_water":           "💧 Suv",
	"rem_meal":            "🍽 Ovqatlar",
	"rem_motivational":    "💬 Motivatsiya",
	"rem_breakfast":       "🌅 Nonushta",
	"rem_lunch":           "🌞 Tushlik",
	"rem_dinner":          "🌙 Kechki ovqat",

	"streak_water":       "🔥 {count} kunlik suv seriyasi — davom eting!",
	"streak_meal":        "🔥 {count} kunlik yozuv seriyasi — zo'r izchillik!",
	"badge_water_5_days": "🏅 Nishon olindi: <b>Gidratatsiya qahramoni</b> — 5 kun ketma-ket suv!",
	"badge_50_meals":     "🏅 Nishon olindi: <b>Taom solnomachisi</b> — 50 ta ovqat yozildi!",

	"reminder_water":     "💧 Bir stakan suv ichish vaqti keldi!",
	"reminder_breakfast": "🌅 Xayrli tong! Nonushtani yozishni unutmang.",
	"reminder_lunch":     "🌞 Tushlik vaqti! Ovqatdan keyin yozib qo'ying.",
	"reminder_dinner":    "🌙 Kechki ovqat vaqti — yozishni unutmang.",
	"motivation_daily":   "💬 Har kungi kichik qadamlar katta natija beradi. Siz zo'rsiz!",
	"weekly_summary":     "📅 <b>Haftangiz</b>\n🍽 Yozilgan ovqatlar: {meals}\n🔥 O'rtacha kaloriya/kun: {avg_calories}\n💧 Suv: {water} ml",
	"weight_prompt":      "⚖️ Haftalik tekshiruv: hozirgi vazningiz necha kg?",
	"weight_updated":     "✅ Vazn saqlandi. Boshidan beri o'zgarish: <b>{delta}</b> kg.",

	"broadcast_done": "📣 Xabar {count} foydalanuvchiga yuborildi.",
}
