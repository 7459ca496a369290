// internal/app/features/profiles/types.go
package profiles

import (
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/viewdata"
)

type listRow struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	RoleName  string
	Status    string
	CreatedAt string
}

type listData struct {
	viewdata.BaseVM

	Query      string
	Rows       []listRow
	Total      int
	Page       int
	TotalPages int
	HasPrev    bool
	HasNext    bool
	PrevPage   int
	NextPage   int
}

type viewData struct {
	viewdata.BaseVM

	ID        string
	Name      string
	Email     string
	Phone     string
	RoleName  string
	Status    string
	AvatarURL string
	Address   string
	BirthDate string
	CreatedAt string
}

type deleteData struct {
	viewdata.BaseVM

	ID   string
	Name string
}
