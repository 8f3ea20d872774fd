package telegram

import (
	"errors"
	"fmt"
	"time"

	"github.com/dvigun/beerbot/internal/models"
	"github.com/dvigun/beerbot/internal/services/beer"
	"github.com/dvigun/beerbot/internal/services/event"
	"github.com/dvigun/beerbot/internal/services/registration"
)

// Static user-facing texts
const (
	textPrivateWelcome = "Привет! Этот бот помогает организовывать пивные встречи.\n" +
		"Чтобы зарегистрироваться, перейдите по ссылке из вашего группового чата."
	textGroupAlreadyRegistered = "Вы уже зарегистрированы."
	textGroupRegisterInvite    = "Чтобы зарегистрироваться, нажмите кнопку или отсканируйте QR-код."
	textGroupActivated         = "Бот активирован. Участники могут зарегистрироваться командой /start."
	textAdminRightsRemoved     = "Права администратора отозваны, создание событий для этого чата отключено."

	textAskName        = "Как вас зовут?"
	textAskBirthDate   = "Укажите дату рождения в формате ДД.ММ или ДД.ММ.ГГГГ. Можно пропустить, отправив «-»."
	textRegistered     = "Регистрация завершена. Ждём вас на встречах!"
	textPrivateOnly    = "Эта команда доступна только в личном чате с ботом."
	textUnknownCommand = "Неизвестная команда"
	textSomethingWrong = "Что-то пошло не так, попробуйте ещё раз."
	textUseButtons     = "Пожалуйста, используйте кнопки выше."

	textAskEventName     = "Как назовём событие?"
	textAskEventDate     = "Когда? Дата в формате ДД.ММ.ГГГГ."
	textAskEventTime     = "Во сколько? Время в формате ЧЧ:ММ."
	textAskLocation      = "Отправьте координаты «широта, долгота» или «-», чтобы пропустить."
	textAskLocationName  = "Как называется место?"
	textAskDescription   = "Добавьте описание события."
	textAskImage         = "Пришлите картинку для анонса или «-», чтобы пропустить."
	textAskBeerChoice    = "Дать участникам выбор из двух сортов?"
	textAskBeerOptions   = "Перечислите два сорта через запятую, например «Лагер, Стаут»."
	textAskNotifyChoice  = "Когда отправить анонс участникам?"
	textAskNotifyTime    = "Когда отправить анонс? Дата и время в формате ДД.ММ.ГГГГ ЧЧ:ММ."
	textEventCancelled   = "Создание события отменено."
	textSchedulingFailed = "Событие сохранено, но не удалось запланировать уведомления. Сообщите администратору."

	textNoEvents       = "Пока нет событий, открытых для выбора."
	textPickEvent      = "Выберите событие:"
	textAttachLocation = "Вы рядом? Отправьте свою локацию, чтобы подтвердить."
	textPickBeer       = "Что будете пить?"
	textTooFar         = "Вы слишком далеко от места встречи. Подойдите ближе и отправьте локацию ещё раз."
	textTooLate        = "Выбор уже закрыт: до начала меньше получаса или событие началось."
)

// registrationErrorText maps a registration failure to a reply
func registrationErrorText(err error) string {
	switch {
	case errors.Is(err, registration.ErrAlreadyRegistered):
		return textGroupAlreadyRegistered
	case errors.Is(err, registration.ErrSponsorNotAdmin):
		return "Регистрация недоступна: бот не активирован в этом чате."
	case errors.Is(err, registration.ErrNameTooShort):
		return "Имя слишком короткое, нужно хотя бы два символа. Попробуйте ещё раз."
	case errors.Is(err, registration.ErrInvalidBirthDate):
		return "Не понял дату. Формат: ДД.ММ или ДД.ММ.ГГГГ, либо «-», чтобы пропустить."
	case errors.Is(err, registration.ErrUnderage):
		return "К сожалению, бот доступен только совершеннолетним."
	default:
		return textSomethingWrong
	}
}

// eventErrorText maps an event wizard failure to a reply
func eventErrorText(err error) string {
	switch {
	case errors.Is(err, event.ErrNotGroupAdmin):
		return "Создавать события могут только администраторы групп, где активирован бот."
	case errors.Is(err, event.ErrNameLength):
		return "Название должно быть от 1 до 255 символов."
	case errors.Is(err, event.ErrInvalidDateFormat):
		return "Не понял дату. Формат: ДД.ММ.ГГГГ."
	case errors.Is(err, event.ErrDateInPast):
		return "Эта дата уже прошла. Укажите сегодняшнюю или будущую."
	case errors.Is(err, event.ErrInvalidTimeFormat):
		return "Не понял время. Формат: ЧЧ:ММ."
	case errors.Is(err, event.ErrInvalidLocation):
		return "Не понял координаты. Формат: «широта, долгота», либо «-», чтобы пропустить."
	case errors.Is(err, event.ErrLocationNameLength):
		return "Название места должно быть от 1 до 500 символов."
	case errors.Is(err, event.ErrDescriptionLength):
		return "Описание должно быть от 1 до 1000 символов."
	case errors.Is(err, event.ErrImageRequired):
		return "Нужна картинка или «-», чтобы пропустить."
	case errors.Is(err, event.ErrInvalidBeerOptions):
		return "Нужно ровно два сорта через запятую, каждый до 100 символов."
	case errors.Is(err, event.ErrInvalidNotifyTimeFormat):
		return "Не понял. Формат: ДД.ММ.ГГГГ ЧЧ:ММ."
	case errors.Is(err, event.ErrNotifyTimeInPast):
		return "Это время уже прошло. Укажите будущее."
	case errors.Is(err, event.ErrBeerOptionsCorrupted):
		return "Данные о сортах потерялись, начните создание заново: /create_event"
	case errors.Is(err, event.ErrSchedulingFailed):
		return textSchedulingFailed
	default:
		return textSomethingWrong
	}
}

// beerErrorText maps a selection failure to a reply
func beerErrorText(err error) string {
	switch {
	case errors.Is(err, beer.ErrNotRegistered):
		return "Сначала нужно зарегистрироваться: нажмите /start в групповом чате."
	case errors.Is(err, beer.ErrEventNotFound):
		return "Событие не найдено, возможно его отменили."
	case errors.Is(err, beer.ErrTooLate):
		return textTooLate
	case errors.Is(err, beer.ErrTooFar):
		return textTooFar
	case errors.Is(err, beer.ErrInvalidChoice):
		return "Такого варианта нет, выберите из кнопок."
	case errors.Is(err, beer.ErrNoActiveEvent):
		return "Событие не выбрано. Начните заново: /beer"
	default:
		return textSomethingWrong
	}
}

// renderAlreadyChosen reports the choice recorded earlier
func renderAlreadyChosen(choice string) string {
	return fmt.Sprintf("Вы уже выбрали: %s", choice)
}

// renderChoiceRecorded confirms the recorded choice
func renderChoiceRecorded(choice string) string {
	return fmt.Sprintf("Записали: %s. До встречи!", choice)
}

// renderEventCreated summarizes a finalized creation
func renderEventCreated(out *event.FinalizeOutput, tz *time.Location) string {
	e := out.Event
	text := fmt.Sprintf("Событие «%s» создано на %s.", e.Name, e.StartsAt(tz).Format("02.01.2006 15:04"))
	if out.Scheduled {
		return text + "\nАнонс участникам запланирован."
	}
	return text + fmt.Sprintf("\nАнонс отправлен: %d доставлено, %d не доставлено.", out.Sent, out.Failed)
}

// renderRegistrationDone greets the freshly registered user
func renderRegistrationDone(user *models.User) string {
	if user != nil && user.Name != "" {
		return fmt.Sprintf("%s, регистрация завершена. Ждём вас на встречах!", user.Name)
	}
	return textRegistered
}
