package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"paytm-txn-api/internal/config"
	"paytm-txn-api/internal/dal"
	"paytm-txn-api/internal/handler"
	"paytm-txn-api/internal/idgen"
	"paytm-txn-api/internal/logger"
	"paytm-txn-api/internal/middleware"
	"paytm-txn-api/internal/mq"
)

func main() {
	// load config env
	config.Init()

	// init infra
	dal.InitDB()
	dal.InitRedis()
	if err := dal.InitRabbitMQ(); err != nil {
		log.Fatalf("rabbitmq init failed: %v", err)
	}

	// idgen + file logger
	idgen.Init(1)
	logger.Init()

	// start consumers
	go mq.StartConsumers()

	// http server
	if config.C.Server.Mode != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.Recover(), middleware.TraceAuditMiddleware())

	v1 := r.Group("/api/v1")
	{
		th := handler.NewTxnHandler()
		v1.POST("/txn", th.Create)
		v1.GET("/txn/:order_id", th.Get)
		v1.POST("/txn/callback", th.Callback)
		v1.GET("/txn/:order_id/confirm", th.Confirm)

		ch := handler.NewConfigHandler()
		admin := v1.Group("/config", middleware.InternalAuth())
		admin.POST("", ch.Create)
		admin.POST("/:mid/activate", ch.Activate)
	}

	addr := ":" + config.C.Server.Port
	log.Printf("listening %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
