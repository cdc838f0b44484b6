package i18n

var ru = map[string]string{
	"main_menu":      "🏠 Главное меню. Что вы хотите сделать?",
	"canceled":       "❌ Отменено. Возвращаемся в главное меню.",
	"help":           "ℹ️ <b>BiteWise</b> отслеживает ваше питание и воду.\n\n/logmeal — записать приём пищи (текст или фото)\n/water — записать воду\n/stats — статистика за сегодня\n/settings — профиль и напоминания\n/cancel — отменить текущее действие",
	"try_again":      "⚠️ Что-то пошло не так, попробуйте ещё раз.",
	"not_registered": "Сначала настройте профиль командой /start.",

	"btn_log_meal":  "🍽 Записать еду",
	"btn_log_water": "💧 Записать воду",
	"btn_stats":     "📊 Статистика",
	"btn_settings":  "⚙️ Настройки",
	"btn_help":      "ℹ️ Помощь",

	"ask_name":         "Как вас зовут?",
	"invalid_name":     "Введите имя длиной от 2 до 50 символов.",
	"ask_age":          "Сколько вам лет?",
	"invalid_age":      "Введите возраст от 0 до 120.",
	"ask_height":       "Какой у вас рост в см?",
	"invalid_height":   "Введите рост от 50 до 250 см.",
	"ask_weight":       "Какой у вас вес в кг?",
	"invalid_weight":   "Введите вес от 20 до 300 кг.",
	"ask_bodyfat":      "Какой у вас процент жира? (необязательно — нажмите «Пропустить», если не знаете)",
	"invalid_bodyfat":  "Введите процент жира от 3 до 70 или нажмите «Пропустить».",
	"btn_skip":         "Пропустить ⏭",
	"ask_gender":       "Укажите ваш пол:",
	"btn_male":         "👨 Мужской",
	"btn_female":       "👩 Женский",
	"ask_timezone":     "Ваш часовой пояс? Отправьте название в формате IANA, например <code>Asia/Tashkent</code> или <code>Europe/Moscow</code>.",
	"invalid_timezone": "Не знаю такой часовой пояс. Попробуйте, например, <code>Asia/Tashkent</code>.",
	"ask_goal":         "Какая у вас главная цель?",
	"ask_activity":     "Насколько вы активны?",

	"goal_lose_weight":   "⚖️ Похудеть",
	"goal_gain_muscle":   "💪 Набрать мышцы",
	"goal_eat_healthier": "🥦 Питаться здоровее",
	"goal_look_younger":  "✨ Выглядеть моложе",
	"goal_other_goal":    "🎯 Другое",

	"activity_sedentary":         "🪑 Сидячий образ жизни",
	"activity_lightly_active":    "🚶 Низкая активность",
	"activity_moderately_active": "🏃 Средняя активность",
	"activity_very_active":       "🏋️ Высокая активность",
	"activity_super_active":      "🔥 Очень высокая",

	"registration_done": "✅ Готово, {name}!\n\nВаши дневные нормы:\n🔥 Калории: <b>{calories}</b> ккал\n🥩 Белки: <b>{protein}</b> г\n🍞 Углеводы: <b>{carbs}</b> г\n🥑 Жиры: <b>{fat}</b> г\n💧 Вода: <b>{water}</b> мл",

	"choose_meal_type": "🍽 Какой это приём пищи?",
	"meal_breakfast":   "🌅 Завтрак",
	"meal_lunch":       "🌞 Обед",
	"meal_dinner":      "🌙 Ужин",
	"meal_snack":       "🍎 Перекус",
	"send_meal":        "Опишите блюдо или пришлите его фото.",
	"analyzing":        "🔍 Анализирую ваше блюдо...",
	"analysis_failed":  "⚠️ Не удалось проанализировать блюдо, записал с приблизительными значениями.",
	"meal_logged_header": "✅ <b>{kind}</b> записан!",

	"label_calories":       "🔥 Калории",
	"label_protein":        "🥩 Белки",
	"label_carbs":          "🍞 Углеводы",
	"label_fat":            "🥑 Жиры",
	"label_sodium":         "🧂 Натрий",
	"label_fiber":          "🌾 Клетчатка",
	"label_sugar":          "🍬 Сахар",
	"label_daily_pct":      "📊 {pct}% вашей дневной нормы калорий",
	"label_positive":       "💚 Польза",
	"label_note":           "⚠️ Обратите внимание",
	"label_recommendation": "💡 Рекомендация",

	"choose_water_amount":      "💧 Сколько воды вы выпили?",
	"btn_custom_amount":        "✏️ Другое",
	"ask_custom_amount":        "Введите количество в мл (1–5000):",
	"invalid_water_amount":     "Введите целое число от 1 до 5000 мл.",
	"water_logged":             "💧 Записано <b>{amount}</b> мл. Сегодня: <b>{total}</b> мл из {target} мл.",
	"water_cooldown_notice":    "🕐 Два приёма воды за пять минут — не торопитесь!",
	"water_daily_limit_notice": "🌊 Сегодня уже больше 5 литров. Это много — прислушайтесь к себе.",

	"stats_header": "📊 <b>Сегодня, {date}</b>\n\n🔥 Калории: {calories}/{calories_target} ккал ({calories_pct}%)\n{calories_bar}\n🥩 Белки: {protein}/{protein_target} г ({protein_pct}%)\n{protein_bar}\n🍞 Углеводы: {carbs}/{carbs_target} г ({carbs_pct}%)\n{carbs_bar}\n🥑 Жиры: {fat}/{fat_target} г ({fat_pct}%)\n{fat_bar}\n💧 Вода: {water}/{water_target} мл ({water_pct}%)\n{water_bar}\n\n🍽 Приёмов пищи сегодня: {meals}",
	"stats_alltime": "📈 <b>За всё время</b>\n🍽 Записано приёмов пищи: {meals}\n💧 Выпито воды: {water} мл",
	"bmi_line":      "🧍 ИМТ: <b>{bmi}</b> — {category}",
	"bmi_underweight": "недостаточный вес",
	"bmi_normal":      "норма",
	"bmi_overweight":  "избыточный вес",
	"bmi_obese":       "ожирение",
	"weight_progress": "⚖️ Изменение веса с начала: <b>{delta}</b> кг",

	"settings_menu":       "⚙️ Настройки — что изменить?",
	"btn_change_language": "🌐 Язык",
	"btn_edit_profile":    "👤 Профиль",
	"btn_edit_reminders":  "⏰ Напоминания",
	"btn_edit_bodyfat":    "📉 Процент жира",
	"edit_profile_menu":   "👤 Какое поле изменить?",
	"btn_edit_name":       "Имя",
	"btn_edit_age":        "Возраст",
	"btn_edit_height":     "Рост",
	"btn_edit_weight":     "Вес",
	"btn_edit_goal":       "Цель",
	"btn_edit_activity":   "Активность",
	"btn_edit_timezone":   "Часовой пояс",
	"profile_updated":     "✅ Профиль обновлён.",
	"language_changed":    "✅ Язык изменён.",
	"targets_delta":       "🎯 Ваши дневные нормы изменились:\n🔥 Калории: {cal_before} → <b>{cal_after}</b> ккал\n🥩 Белки: {protein_before} → <b>{protein_after}</b> г\n🍞 Углеводы: {carbs_before} → <b>{carbs_after}</b> г\n🥑 Жиры: {fat_before} → <b>{fat_after}</b> г",
	"reminders_menu":      "⏰ Нажмите на канал, чтобы переключить его:",
	"reminders_updated":   "✅ Напоминания обновлены.",
	"rem_water":           "💧 Вода",
	"rem_meal":            "🍽 Приёмы пищи",
	"rem_motivational":    "💬 Мотивация",
	"rem_breakfast":       "🌅 Завтрак",
	"rem_lunch":           "🌞 Обед",
	"rem_dinner":          "🌙 Ужин",

	"streak_water":       "🔥 Серия {count} дней с водой — так держать!",
	"streak_meal":        "🔥 Серия {count} дней записей — отличная последовательность!",
	"badge_water_5_days": "🏅 Получен значок: <b>Герой гидратации</b> — 5 дней воды подряд!",
	"badge_50_meals":     "🏅 Получен значок: <b>Летописец еды</b> — 50 записанных приёмов пищи!",

	"reminder_water":     "💧 Время выпить стакан воды!",
	"reminder_breakfast": "🌅 Доброе утро! Не забудьте записать завтрак.",
	"reminder_lunch":     "🌞 Обеденное время! Запишите еду, когда закончите.",
	"reminder_dinner":    "🌙 Время ужина — не забудьте записать его.",
	"motivation_daily":   "💬 Маленькие шаги каждый день складываются в результат. Вы молодец!",
	"weekly_summary":     "📅 <b>Ваша неделя</b>\n🍽 Записано приёмов пищи: {meals}\n🔥 Средние калории/день: {avg_calories}\n💧 Вода: {water} мл",
	"weight_prompt":      "⚖️ Еженедельная проверка: какой у вас сейчас вес в кг?",
	"weight_updated":     "✅ Вес сохранён. Изменение с начала: <b>{delta}</b> кг.",

	"broadcast_done": "📣 Рассылка отправлена {count} пользователям.",
}
