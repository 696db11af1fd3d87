package paginator

import (
	"encoding/json"
	"fmt"
	"strconv"
)

const EllipsisMarker = "..."

// PageItem is one slot of a page strip: a page number or an ellipsis.
type PageItem struct {
	Number   int
	Ellipsis bool
}

func Page(n int) PageItem {
	return PageItem{Number: n}
}

func Ellipsis() PageItem {
	return PageItem{Ellipsis: true}
}

func (p PageItem) String() string {

	if p.Ellipsis {
		return EllipsisMarker
	}

	return strconv.Itoa(p.Number)
}

// MarshalJSON writes a number for pages and "..." for ellipses, the shape
// frontends already render.
func (p PageItem) MarshalJSON() ([]byte, error) {

	if p.Ellipsis {
		return json.Marshal(EllipsisMarker)
	}

	return json.Marshal(p.Number)
}

func (p *PageItem) UnmarshalJSON(b []byte) error {

	var number int
	if err := json.Unmarshal(b, &number); err == nil {
		*p = Page(number)
		return nil
	}

	var marker string
	if err := json.Unmarshal(b, &marker); err != nil {
		return err
	}

	if marker != EllipsisMarker {
		return fmt.Errorf("page strip item %q is neither a number nor %q", marker, EllipsisMarker)
	}

	*p = Ellipsis()
	return nil
}
