package app

import (
	"context"
	"fmt"
	"io"

	"github.com/cristianoliveira/contactbook/internal/colors"
	"github.com/cristianoliveira/contactbook/internal/domain"
	"github.com/cristianoliveira/contactbook/internal/format"
)

// ListOptions holds the parameters of a non-interactive listing.
type ListOptions struct {
	Query    string
	Page     int
	PageSize int

	// Sort overrides the directory's order when set.
	Sort     domain.SortOrder
	AllPages bool
	Format   format.FormatterType
}

// ListUseCase renders pages of the contact collection.
type ListUseCase struct {
	dir *Directory
}

// NewListUseCase creates a new list use-case.
func NewListUseCase(dir *Directory) *ListUseCase {
	if dir == nil {
		panic("NewListUseCase: directory dependency cannot be nil")
	}
	return &ListUseCase{dir: dir}
}

// Execute loads the collection and writes the requested page(s).
func (u *ListUseCase) Execute(ctx context.Context, opts ListOptions, w io.Writer) error {
	res, err := u.dir.Load(ctx)
	if err != nil {
		return err
	}
	if res.Err != nil {
		colors.Warning(fmt.Sprintf("could not load contacts: %v", res.Err))
	}

	order := opts.Sort
	if order == "" && u.dir.Presorted() {
		order = u.dir.SortOrder()
	}
	listing, err := BuildListing(u.dir, res.Contacts, opts, order)
	if err != nil {
		return err
	}
	return format.NewFormatter(opts.Format).Format(listing, w)
}

// BuildListing sorts and filters all, then slices the requested pages. An
// empty order keeps the collection in source order.
func BuildListing(dir *Directory, all []domain.Contact, opts ListOptions, order domain.SortOrder) (format.Listing, error) {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = dir.PageSize()
	}

	sorted := domain.Clone(all)
	if order != "" {
		sorted = domain.SortByName(all, order)
	}
	result := dir.Engine().Commit(sorted, opts.Query)
	visible := sorted
	if result.Filtered {
		visible = result.Contacts
	}

	total := domain.TotalPages(len(visible), pageSize)
	listing := format.Listing{
		Header:     result.Header(),
		Query:      result.Query,
		Filtered:   result.Filtered,
		Sort:       order,
		TotalPages: total,
	}

	if opts.AllPages {
		for p := 1; p <= total; p++ {
			listing.Pages = append(listing.Pages, format.PageView{Number: p, Contacts: domain.Page(visible, pageSize, p)})
		}
		return listing, nil
	}

	page := opts.Page
	if page == 0 {
		page = 1
	}
	if page < 1 || page > total {
		return listing, fmt.Errorf("page %d out of range (1-%d)", page, total)
	}
	listing.Pages = []format.PageView{{Number: page, Contacts: domain.Page(visible, pageSize, page)}}
	return listing, nil
}
