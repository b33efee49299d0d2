package service

import (
	"fmt"
	"html"
	"strings"

	"wishlist/internal/domain"
)

const (
	msgHandleRequired = "⚠️ Для работы с ботом необходимо установить username в настройках Telegram.\n\n" +
		"Откройте: <b>Настройки → Редактировать профиль → Имя пользователя</b>"

	msgWelcome = "🎅 Хо-хо-хо! Здравствуй, я Дедушка Мороз!\n\n" +
		"Скоро Новый год, и я собираю желания. Расскажи мне стишок, а потом загадай три желания."
	msgPoemPrompt     = "Расскажи мне стишок, чтобы я мог продолжить! ⤵️"
	msgPoemRemembered = "🎄 Я помню, ты уже рассказал мне стишок!\n\n" +
		"Теперь расскажи мне свои желания. Напиши первое желание:"
	msgNotAPoem = "Это совсем не похоже на стих, давай попробуем еще раз ⤵️"

	msgWishesCollected = "🎅 Дедушка подумает над твоими желаниями и может быть, свершится магия и ты получишь один из подарков!\n\n" +
		"P.S. Посмотреть свои желания и поменять их ты можешь командой /wishes"
	msgWishChanged   = "✅ Хорошо, я учел твое новое желание!"
	msgActionCancel  = "❌ Действие отменено."
	msgNoWishesYet   = "Пока что ты ничего не просил у Дедушки Мороза, но у тебя еще есть время успеть! Напиши /start"
	msgStartHint     = "Напиши /start, чтобы рассказать Дедушке Морозу о своих желаниях 🎄"
	msgWishesHint    = "Твои желания уже у Дедушки Мороза 🎅\n\nПосмотреть и поменять их можно командой /wishes"
	msgNoUsers       = "❓ Нет зарегистрированных пользователей"
	msgAdminGranted  = "✅ Вам выданы админ-права!"
	msgWishNotSet    = "Не задано"
	msgNoWishesShort = "<i>Нет желаний</i>"
	msgNoPoemShort   = "<i>Нет стихотворения</i>"

	msgNoChats     = "❌ Нет доступных чатов.\n\nДобавьте бота в групповой чат, чтобы отправлять туда сообщения."
	msgSelectChat  = "📢 Выберите чат для отправки сообщения:"
	msgRelayCancel = "❌ Отправка сообщения отменена."

	msgBroadcastPrompt = "📢 <b>Режим массовой рассылки</b>\n\n" +
		"Отправьте сообщение, которое будет отправлено всем пользователям бота.\n\n" +
		"Вы можете отправить:\n" +
		"• Текст\n" +
		"• Фото, видео или анимацию (с подписью или без)\n" +
		"• Аудио или голосовое сообщение\n" +
		"• Документ или стикер\n\n" +
		"⚠️ <b>Внимание:</b> Сообщение будет отправлено ВСЕМ пользователям!\n\n" +
		"Напишите /cancel для отмены."
	msgBroadcastCancelled = "❌ Рассылка отменена."
	btnBroadcastConfirm   = "✅ Да, отправить всем"
	btnBroadcastCancel    = "❌ Отмена"

	msgAddNotAllowed = "⛔ У вас нет прав для добавления бота в группы.\n\n" +
		"Только администраторы бота могут добавлять его в чаты."
	msgGroupGreeting = "🎅 Привет! Я Дед Мороз.\n\n" +
		"Скоро придёт Новый год и я принимаю ваши пожелания теперь в электронном формате. " +
		"Пишите мне лично в сообщения и возможно чудо случится!"
)

var wishPrompts = map[int]string{
	1: "Какое твое первое желание? (Пожалуйста, используй любой сервис для сокращения длинной ссылки) ⤵️",
	2: "Какое твое второе желание? ⤵️",
	3: "Какое твое третье желание? ⤵️",
}

var wishMarks = map[int]string{
	1: "1️⃣",
	2: "2️⃣",
	3: "3️⃣",
}

func msgInvalidWish() string {
	return fmt.Sprintf("⚠️ Желание не может быть пустым или длиннее %d символов. Попробуй еще раз ⤵️", domain.MaxWishLength)
}

func msgChangeWishPrompt(n int) string {
	return fmt.Sprintf("Введите новое желание для позиции %d:", n)
}

func msgWishChangeNotice(handle, oldWish, newWish string) string {
	if handle == "" {
		handle = "unknown"
	}
	if oldWish == "" {
		oldWish = "не задано"
	}
	return fmt.Sprintf("🎁 @%s поменял свое желание\nс \"%s\"\nна \"%s\"",
		html.EscapeString(handle), html.EscapeString(oldWish), html.EscapeString(newWish))
}

func msgRelayPrompt(title string) string {
	return fmt.Sprintf("📝 Отправьте сообщение для чата \"%s\":\n\n", html.EscapeString(title)) +
		"Вы можете отправить:\n" +
		"• Текст\n" +
		"• Фото, видео или анимацию (с подписью или без)\n" +
		"• Аудио или голосовое сообщение\n" +
		"• Документ или стикер\n\n" +
		"Напишите /cancel для отмены."
}

func msgRelaySent(title string) string {
	return fmt.Sprintf("✅ Сообщение успешно отправлено в чат \"%s\"!", html.EscapeString(title))
}

func msgConfirmBroadcast(recipients int) string {
	return fmt.Sprintf("📊 <b>Подтверждение рассылки</b>\n\n"+
		"Сообщение будет отправлено <b>%d пользователям</b>.\n\n"+
		"Вы уверены?", recipients)
}

func msgBroadcastStarted(recipients int) string {
	return fmt.Sprintf("🚀 Начинаю рассылку %d пользователям...", recipients)
}

func msgBroadcastSummary(result domain.BroadcastResult) string {
	return fmt.Sprintf("✅ Рассылка завершена!\n\n"+
		"📤 Отправлено: %d\n"+
		"❌ Ошибок: %d\n\n"+
		"🚦 Инициатору рассылки сообщение не отправляется.", result.Sent, result.Failed)
}

func msgBotAdded(title string) string {
	return fmt.Sprintf("✅ Бот успешно добавлен в чат \"%s\"", html.EscapeString(title))
}

// formatWishes renders a user's own wishes
func formatWishes(w *domain.Wishes) string {
	var b strings.Builder
	b.WriteString("🎄 Твои желания:\n\n")
	for n := 1; n <= domain.WishSlots; n++ {
		wish := w.Wish(n)
		if wish == "" {
			wish = msgWishNotSet
		} else {
			wish = html.EscapeString(wish)
		}
		fmt.Fprintf(&b, "%s %s\n", wishMarks[n], wish)
	}
	return b.String()
}

func changeWishKeyboard() [][]domain.Button {
	rows := make([][]domain.Button, 0, domain.WishSlots)
	for n := 1; n <= domain.WishSlots; n++ {
		rows = append(rows, []domain.Button{{
			Text: fmt.Sprintf("%s Поменять %d желание", wishMarks[n], n),
			Data: domain.ChangeWishData(n),
		}})
	}
	return rows
}

// formatAllWishes renders every user's wishes for administrators
func formatAllWishes(list []domain.UserWishes) string {
	var b strings.Builder
	b.WriteString("📋 <b>Список всех желаний:</b>\n\n")
	for _, u := range list {
		var lines []string
		for i, w := range []*string{u.Wish1, u.Wish2, u.Wish3} {
			if w != nil && *w != "" {
				lines = append(lines, wishMarks[i+1]+" "+html.EscapeString(*w))
			}
		}
		wishes := msgNoWishesShort
		if len(lines) > 0 {
			wishes = strings.Join(lines, "\n")
		}
		fmt.Fprintf(&b, "👤 %s\n%s\n\n", html.EscapeString(u.DisplayName()), wishes)
	}
	return strings.TrimSpace(b.String())
}

// formatPoems renders every user's poem for administrators
func formatPoems(list []domain.UserWishes) string {
	var b strings.Builder
	b.WriteString("📜 <b>Стихотворения:</b>\n\n")
	for _, u := range list {
		poem := msgNoPoemShort
		if u.Poem != nil && *u.Poem != "" {
			poem = html.EscapeString(*u.Poem)
		}
		fmt.Fprintf(&b, "👤 %s\n%s\n\n", html.EscapeString(u.DisplayName()), poem)
	}
	return strings.TrimSpace(b.String())
}

// formatUsers renders the user list with admin and blocked flags
func formatUsers(users []domain.User) string {
	var b strings.Builder
	b.WriteString("👥 <b>Список пользователей:</b>\n\n")
	for i, u := range users {
		admin := "❌"
		if u.IsAdmin {
			admin = "✅"
		}
		locked := ""
		if u.IsBlocked {
			locked = " 🔒 Заблокирован"
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, html.EscapeString(u.DisplayName()))
		fmt.Fprintf(&b, "   Админ: %s%s\n", admin, locked)
		fmt.Fprintf(&b, "   Присоединился: %s\n\n", u.CreatedAt.Format("02.01.2006 15:04"))
	}
	return strings.TrimSpace(b.String())
}
