package dto

// ProfileUpdateReq represents the request body for the /api/auth/profile
// endpoint. Pointer fields distinguish "absent" from "explicitly empty":
// an empty photoURL regenerates the default avatar.
type ProfileUpdateReq struct {
	DisplayName *string `json:"displayName" binding:"omitempty,min=1"`
	PhotoURL    *string `json:"photoURL"`
}
