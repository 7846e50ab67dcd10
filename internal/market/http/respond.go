package http

import (
	"github.com/openlocal/market/internal/market/domain"
	"github.com/openlocal/market/pkg/marketsdk"
)

// Mapping from domain entities to wire responses. Hydration already
// happened in the service layer; these are pure shape conversions.

func toRoleResponse(r domain.Role) marketsdk.RoleResponse {
	return marketsdk.RoleResponse{
		ID:             r.ID,
		Name:           r.Name,
		DisplayName:    r.DisplayName,
		CanSell:        r.CanSell,
		CanModerate:    r.CanModerate,
		CanAccessAdmin: r.CanAccessAdmin,
	}
}

func toSellerProfileResponse(p domain.SellerProfile) marketsdk.SellerProfileResponse {
	return marketsdk.SellerProfileResponse{
		ID:         p.ID,
		StoreName:  p.StoreName,
		Bio:        p.Bio,
		IsVerified: p.IsVerified,
		IsActive:   p.IsActive,
		CreatedAt:  p.CreatedAt,
	}
}

func toLocationResponse(u domain.User) marketsdk.LocationResponse {
	out := marketsdk.LocationResponse{
		Display:       u.FullLocation(),
		AddressLine:   u.AddressLine,
		PostalCode:    u.PostalCode,
		GooglePlaceID: u.GooglePlaceID,
		Data:          u.LocationData,
	}
	if u.City != nil {
		out.City = u.City.Name
	}
	if u.State != nil {
		out.State = u.State.Name
	}
	if u.Country != nil {
		out.Country = u.Country.Name
	}
	if coords := u.Coordinates(); coords != nil {
		out.Coordinates = &marketsdk.Coordinates{
			Latitude:  coords.Latitude,
			Longitude: coords.Longitude,
		}
	}
	return out
}

func toUserResponse(u domain.User) marketsdk.UserResponse {
	out := marketsdk.UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Phone:         u.Phone,
		Bio:           u.Bio,
		EmailVerified: u.EmailVerifiedAt != nil,
		Location:      toLocationResponse(u),
		CreatedAt:     u.CreatedAt,
	}
	if u.Role != nil {
		out.Role = toRoleResponse(*u.Role)
	}
	if u.SellerProfile != nil {
		profile := toSellerProfileResponse(*u.SellerProfile)
		out.SellerProfile = &profile
	}
	return out
}

func toAppointmentsResponse(appointments []domain.Appointment) marketsdk.AppointmentsResponse {
	out := marketsdk.AppointmentsResponse{
		Appointments: make([]marketsdk.AppointmentResponse, 0, len(appointments)),
	}
	for _, a := range appointments {
		out.Appointments = append(out.Appointments, marketsdk.AppointmentResponse{
			ID:              a.ID,
			SellerProfileID: a.SellerProfileID,
			StartsAt:        a.StartsAt,
			EndsAt:          a.EndsAt,
			Status:          a.Status,
			CreatedAt:       a.CreatedAt,
		})
	}
	return out
}
