package dto

type UserQuery struct {
	Role   string `form:"role" json:"role" validate:"omitempty,is-user-role"`
	Search string `form:"search" json:"search"`
	Sort   string `form:"sort" json:"sort"`
	Page   int    `form:"page" json:"page"`
	Limit  int    `form:"limit" json:"limit"`
}

type UserListResponse struct {
	Success     bool           `json:"success"`
	Users       []UserResponse `json:"users"`
	TotalUsers  int64          `json:"totalUsers"`
	NumOfPages  int            `json:"numOfPages"`
	CurrentPage int            `json:"currentPage"`
}

type RecruiterListResponse struct {
	Success         bool           `json:"success"`
	Recruiters      []UserResponse `json:"recruiters"`
	TotalRecruiters int64          `json:"totalRecruiters"`
	NumOfPages      int            `json:"numOfPages"`
	CurrentPage     int            `json:"currentPage"`
}
