package main

import (
	"github.com/bolder-electric/internal/config"
	"github.com/bolder-electric/internal/logger"
	"github.com/bolder-electric/internal/models"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 联系信息（单行记录）
	var existingContact models.ContactInfo
	if err := models.DB.First(&existingContact, 1).Error; err != nil {
		contact := models.ContactInfo{
			ID:            1,
			Phone:         "(951) 397-4025",
			Email:         "info@bolderelectric.com",
			Address:       "Riverside, CA",
			ServiceArea:   "Riverside County and surrounding areas",
			BusinessHours: "Mon-Fri 8:00 AM - 5:00 PM",
		}
		if err := models.DB.Create(&contact).Error; err != nil {
			stdLog.Printf("Failed to create contact info: %v", err)
		} else {
			stdLog.Printf("Created contact info")
		}
	} else {
		stdLog.Printf("Contact info already exists")
	}

	// 服务项目
	services := []models.Service{
		{Name: "Residential Electrical", Description: "Wiring, outlets, switches and general electrical work for homes.", BasePrice: models.NewMoneyFromFloat(100)},
		{Name: "Commercial Electrical", Description: "Electrical installation and maintenance for commercial properties.", BasePrice: models.NewMoneyFromFloat(150)},
		{Name: "Emergency Service", Description: "24/7 emergency electrical repair.", BasePrice: models.NewMoneyFromFloat(250)},
		{Name: "Panel Upgrade", Description: "Electrical panel replacement and capacity upgrades.", BasePrice: models.NewMoneyFromFloat(300)},
		{Name: "Lighting Installation", Description: "Indoor and outdoor lighting design and installation.", BasePrice: models.NewMoneyFromFloat(125)},
	}
	for _, svc := range services {
		var existing models.Service
		if err := models.DB.Where("name = ?", svc.Name).First(&existing).Error; err != nil {
			svc.IsActive = true
			if err := models.DB.Create(&svc).Error; err != nil {
				stdLog.Printf("Failed to create service %s: %v", svc.Name, err)
			} else {
				stdLog.Printf("Created service: %s", svc.Name)
			}
		} else {
			stdLog.Printf("Service already exists: %s", svc.Name)
		}
	}

	// 预约时段
	slots := []string{
		"8:00 AM",
		"9:00 AM",
		"10:00 AM",
		"11:00 AM",
		"12:00 PM",
		"1:00 PM",
		"2:00 PM",
		"3:00 PM",
		"4:00 PM",
	}
	for _, label := range slots {
		var existing models.TimeSlot
		if err := models.DB.Where("label = ?", label).First(&existing).Error; err != nil {
			slot := models.TimeSlot{Label: label, IsActive: true}
			if err := models.DB.Create(&slot).Error; err != nil {
				stdLog.Printf("Failed to create time slot %s: %v", label, err)
			} else {
				stdLog.Printf("Created time slot: %s", label)
			}
		} else {
			stdLog.Printf("Time slot already exists: %s", label)
		}
	}

	stdLog.Printf("Seed completed")
}
