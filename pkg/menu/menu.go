package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"github.com/yurifrl/fintrack/pkg/ledger"
	"github.com/yurifrl/fintrack/pkg/models"
)

var errInputClosed = errors.New("input closed")

// Menu drives the interactive record management loop. The dialogue keeps
// re-prompting until a field is syntactically valid, so the tracker only ever
// receives well-formed values.
type Menu struct {
	tracker *ledger.Tracker
	in      *bufio.Scanner
	out     io.Writer
	logger  *log.Logger
}

func New(tracker *ledger.Tracker, in io.Reader, out io.Writer, logger *log.Logger) *Menu {
	return &Menu{
		tracker: tracker,
		in:      bufio.NewScanner(in),
		out:     out,
		logger:  logger,
	}
}

// Run loops until the user picks exit or input ends.
func (m *Menu) Run() error {
	err := m.loop()
	if errors.Is(err, errInputClosed) {
		return nil
	}
	return err
}

func (m *Menu) loop() error {
	for {
		fmt.Fprintln(m.out, "--- Меню ---")
		fmt.Fprintln(m.out, "1. Добавить запись")
		fmt.Fprintln(m.out, "2. Редактировать запись")
		fmt.Fprintln(m.out, "3. Удалить запись")
		fmt.Fprintln(m.out, "4. Поиск записей")
		fmt.Fprintln(m.out, "5. Показать баланс")
		fmt.Fprintln(m.out, "6. Выйти")

		choice, err := m.prompt("Введите ваш выбор: ")
		if err != nil {
			return err
		}
		m.logger.Debug("menu choice", "choice", choice)

		switch choice {
		case "1":
			err = m.addRecord()
		case "2":
			err = m.editRecord()
		case "3":
			err = m.deleteRecord()
		case "4":
			err = m.searchRecords()
		case "5":
			m.showBalance()
		case "6":
			return nil
		default:
			fmt.Fprintln(m.out, "Некорректный выбор, попробуйте снова.")
		}
		if err != nil {
			return err
		}
	}
}

func (m *Menu) addRecord() error {
	date, err := m.promptDate("Введите дату (гггг-мм-дд): ")
	if err != nil {
		return err
	}
	category, err := m.promptCategory("Введите категорию (Доход/Расход): ")
	if err != nil {
		return err
	}
	amount, err := m.promptAmount("Введите сумму: ")
	if err != nil {
		return err
	}
	description, err := m.prompt("Введите описание: ")
	if err != nil {
		return err
	}

	return m.tracker.Add(models.Record{
		Date:        date,
		Category:    category,
		Amount:      amount,
		Description: description,
	})
}

func (m *Menu) editRecord() error {
	index, err := m.promptIndex("Введите индекс записи для редактирования: ")
	if err != nil {
		return err
	}
	date, err := m.promptDate("Введите новую дату (гггг-мм-дд): ")
	if err != nil {
		return err
	}
	category, err := m.promptCategory("Введите новую категорию (Доход/Расход): ")
	if err != nil {
		return err
	}
	amount, err := m.promptAmount("Введите новую сумму: ")
	if err != nil {
		return err
	}
	description, err := m.prompt("Введите новое описание: ")
	if err != nil {
		return err
	}

	err = m.tracker.Edit(index, models.Record{
		Date:        date,
		Category:    category,
		Amount:      amount,
		Description: description,
	})
	if errors.Is(err, ledger.ErrIndexOutOfRange) {
		fmt.Fprintln(m.out, "Некорректный индекс записи.")
		return nil
	}
	return err
}

func (m *Menu) deleteRecord() error {
	index, err := m.promptIndex("Введите индекс записи для удаления: ")
	if err != nil {
		return err
	}

	err = m.tracker.Delete(index)
	if errors.Is(err, ledger.ErrIndexOutOfRange) {
		fmt.Fprintln(m.out, "Некорректный индекс записи.")
		return nil
	}
	return err
}

func (m *Menu) searchRecords() error {
	query, err := m.prompt("Введите строку для поиска: ")
	if err != nil {
		return err
	}
	for i, r := range m.tracker.Search(query) {
		fmt.Fprintf(m.out, "%d: Дата: %s, Категория: %s, Сумма: %s, Описание: %s\n", i, r.Date, r.Category, r.AmountString(), r.Description)
	}
	return nil
}

func (m *Menu) showBalance() {
	balance := m.tracker.Balance()
	fmt.Fprintf(m.out, "Текущий баланс: %s\n", balance.Net)
	fmt.Fprintf(m.out, "Общий доход: %s\n", balance.Income)
	fmt.Fprintf(m.out, "Общий расход: %s\n", balance.Expense)
}

// prompt prints the label and reads one line.
func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return strings.TrimRight(m.in.Text(), "\r"), nil
}

// promptDate keeps asking until the date is well-formed. The first label may
// differ from the one used on retries.
func (m *Menu) promptDate(label string) (string, error) {
	for {
		date, err := m.prompt(label)
		if err != nil {
			return "", err
		}
		if models.IsValidDate(date) {
			return date, nil
		}
		label = "Введите дату (гггг-мм-дд): "
	}
}

func (m *Menu) promptCategory(label string) (models.Category, error) {
	for {
		raw, err := m.prompt(label)
		if err != nil {
			return "", err
		}
		if category, perr := models.ParseCategory(raw); perr == nil {
			return category, nil
		}
		label = "Введите категорию (Доход/Расход): "
	}
}

func (m *Menu) promptAmount(label string) (decimal.Decimal, error) {
	for {
		raw, err := m.prompt(label)
		if err != nil {
			return decimal.Decimal{}, err
		}
		if amount, perr := decimal.NewFromString(raw); perr == nil && !amount.IsNegative() {
			return amount, nil
		}
		label = "Введите сумму: "
	}
}

func (m *Menu) promptIndex(label string) (int, error) {
	for {
		raw, err := m.prompt(label)
		if err != nil {
			return 0, err
		}
		if index, perr := strconv.Atoi(raw); perr == nil {
			return index, nil
		}
	}
}
