package handler

import (
	"fmt"
	"html"
)

const (
	msgNoPermission = "⛔ У вас нет прав для выполнения этой команды."
	msgGenericError = "⚠️ Произошла ошибка. Попробуйте позже."

	msgInfo = "Здесь ты можешь написать о своих желаниях Деду Морозу. Иногда чудеса случаются, помни об этом 😉\n\n" +
		"<b>Список твоих желаний: /wishes</b>"

	msgAdminCommands = "🛠 <b>Команды администратора:</b>\n\n" +
		"/wish - список всех желаний\n" +
		"/poem - список всех стихотворений\n" +
		"/users - список пользователей\n" +
		"/ban @username - заблокировать пользователя\n" +
		"/unban @username - разблокировать пользователя\n" +
		"/op @username - выдать админ-права\n" +
		"/deop @username - забрать админ-права\n" +
		"/talk - отправить сообщение в групповой чат\n" +
		"/talkall - рассылка всем пользователям"

	msgUnsupportedPayload = "❌ Неподдерживаемый тип сообщения."
	msgChatNotFound       = "❌ Чат не найден."
	msgDeliveryFailed     = "❌ Не удалось отправить сообщение. Возможно бот был удалён из чата."
	msgNoRecipients       = "❌ Нет пользователей для рассылки."
	msgNoPending          = "❌ Сообщение для рассылки не найдено."
	msgInvalidWishNumber  = "⚠️ Некорректный номер желания."
)

func msgUsage(command string) string {
	return fmt.Sprintf("❌ Неправильный формат команды.\nИспользуйте: <code>%s @username</code>", command)
}

func msgUserNotFound(handle string) string {
	return fmt.Sprintf("❌ @%s не найден в списке", html.EscapeString(handle))
}

func msgAlreadyBlocked(handle string) string {
	return fmt.Sprintf("❌ @%s уже заблокирован", html.EscapeString(handle))
}

func msgNotBlocked(handle string) string {
	return fmt.Sprintf("❌ @%s не заблокирован", html.EscapeString(handle))
}

func msgAlreadyAdmin(handle string) string {
	return fmt.Sprintf("❌ @%s уже является администратором", html.EscapeString(handle))
}

func msgNotAdmin(handle string) string {
	return fmt.Sprintf("❌ @%s не является администратором", html.EscapeString(handle))
}

func msgBanned(handle string) string {
	return fmt.Sprintf("✅ @%s заблокирован", html.EscapeString(handle))
}

func msgUnbanned(handle string) string {
	return fmt.Sprintf("✅ @%s разблокирован", html.EscapeString(handle))
}

func msgOpped(handle string) string {
	return fmt.Sprintf("✅ @%s теперь является администратором", html.EscapeString(handle))
}

func msgDeopped(handle string) string {
	return fmt.Sprintf("✅ @%s больше не является администратором", html.EscapeString(handle))
}
