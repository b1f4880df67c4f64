package driver

import "marketplace/internal/entities"

func ToDomain(d *DriverDB) *entities.Driver {
	if d == nil {
		return nil
	}
	return &entities.Driver{
		ID:     d.ID,
		UserID: d.UserID,
		Status: entities.DriverStatusType(d.Status),
		Service: entities.ServiceClass{
			Category:   d.Category,
			SubService: d.SubService,
		},
		WalletBalance: d.WalletBalance,
		Special:       d.Special,
		VehicleID:     d.VehicleID,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func FromDomainModify(driverModify *entities.DriverModify) *DriverModifyDB {
	if driverModify == nil {
		return nil
	}
	driverDB := &DriverModifyDB{}

	if driverModify.ID != nil {
		driverDB.ID = driverModify.ID
	}
	if driverModify.Status != nil {
		status := driverModify.Status.String()
		driverDB.Status = &status
	}
	if driverModify.Service != nil {
		category := driverModify.Service.Category
		subService := driverModify.Service.SubService
		driverDB.Category = &category
		driverDB.SubService = &subService
	}
	if driverModify.WalletBalance != nil {
		driverDB.WalletBalance = driverModify.WalletBalance
	}
	if driverModify.Special != nil {
		driverDB.Special = driverModify.Special
	}
	if driverModify.VehicleID != nil {
		driverDB.VehicleID = driverModify.VehicleID
	}

	return driverDB
}
