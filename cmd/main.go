package main

import (
	"log"

	"github.com/Monika2004-sys/Smart-Health-Tracker/config"
	"github.com/Monika2004-sys/Smart-Health-Tracker/routes"
	"github.com/Monika2004-sys/Smart-Health-Tracker/services"
	"github.com/Monika2004-sys/Smart-Health-Tracker/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	utils.InitMailer()

	hub := services.NewRealtimeHub()
	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push notifications disabled: %v", err)
		push = nil
	}
	services.InitReminderDeps(hub, push)

	sched := services.NewReminderScheduler()

	r := routes.SetupRouter(hub, push, sched)
	r.Run(":8080")
}
