package converter

import (
	"healthconnect/internal/delivery/dto"
	"healthconnect/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:         user.ID,
		Email:      user.Email,
		FullName:   user.FullName,
		Phone:      user.Phone,
		CitizenID:  user.CitizenID,
		AvatarURL:  user.AvatarURL,
		Role:       entity.RoleName(user.RoleID),
		HospitalID: user.HospitalID,
		IsActive:   user.IsActive,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}

	// Include hospital info if preloaded
	if user.Hospital != nil && user.Hospital.ID != 0 {
		response.Hospital = HospitalToResponse(user.Hospital)
	}

	return response
}

// UsersToResponses converts a slice of User entities to UserResponse DTOs
func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i, user := range users {
		resp := UserToResponse(&user)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
