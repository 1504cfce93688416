// Package pagination - расчёт сжатой последовательности номеров страниц
// для контрола пагинации в админке.
package pagination

const (
	// windowSize - сколько страниц показывать с каждой стороны от текущей
	windowSize = 2
)

// Item - элемент последовательности: номер страницы или многоточие
type Item struct {
	Page     int
	Ellipsis bool
	Current  bool
}

// Nav - состояние кнопок навигации
type Nav struct {
	First    int
	Prev     int
	Next     int
	Last     int
	HasPrev  bool
	HasNext  bool
	Disabled bool
}

// Pager - всё, что нужно шаблону для отрисовки пагинации
type Pager struct {
	CurrentPage int
	LastPage    int
	Items       []Item
	Nav         Nav
}

// Window - первая страница, многоточие при разрыве, окно current±2,
// многоточие при разрыве, последняя страница.
func Window(currentPage, lastPage int) []Item {
	if lastPage < 1 {
		lastPage = 1
	}
	currentPage = clamp(currentPage, 1, lastPage)

	start := max(currentPage-windowSize, 1)
	end := min(currentPage+windowSize, lastPage)

	items := make([]Item, 0, end-start+5)

	if start > 1 {
		items = append(items, pageItem(1, currentPage))
		if start > 2 {
			items = append(items, Item{Ellipsis: true})
		}
	}

	for p := start; p <= end; p++ {
		items = append(items, pageItem(p, currentPage))
	}

	if end < lastPage {
		if end < lastPage-1 {
			items = append(items, Item{Ellipsis: true})
		}
		items = append(items, pageItem(lastPage, currentPage))
	}

	return items
}

// New - построение Pager для текущей и последней страницы
func New(currentPage, lastPage int) Pager {
	if lastPage < 1 {
		lastPage = 1
	}
	currentPage = clamp(currentPage, 1, lastPage)

	return Pager{
		CurrentPage: currentPage,
		LastPage:    lastPage,
		Items:       Window(currentPage, lastPage),
		Nav: Nav{
			First:    1,
			Prev:     max(currentPage-1, 1),
			Next:     min(currentPage+1, lastPage),
			Last:     lastPage,
			HasPrev:  currentPage > 1,
			HasNext:  currentPage < lastPage,
			Disabled: lastPage == 1,
		},
	}
}

// LastPage - номер последней страницы по общему количеству записей
func LastPage(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

// Offset - смещение для SQL по номеру страницы (с единицы)
func Offset(page, pageSize int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * pageSize
}

func pageItem(p, current int) Item {
	return Item{Page: p, Current: p == current}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
