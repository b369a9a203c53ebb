package config

import (
	"flag"
	"log"
	"strings"

	"github.com/spf13/viper"
)

type ServerCfg struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}
type MysqlCfg struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Database     string `mapstructure:"database"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	Charset      string `mapstructure:"charset"`
	MaxIdleConns int    `mapstructure:"maxIdleConns"`
	MaxOpenConns int    `mapstructure:"maxOpenConns"`
}
type RabbitCfg struct {
	Host          string `mapstructure:"host"`
	Port          int    `mapstructure:"port"`
	Username      string `mapstructure:"username"`
	Password      string `mapstructure:"password"`
	VirtualHost   string `mapstructure:"virtualHost"`
	PrefetchCount int    `mapstructure:"prefetchCount"`
}
type RedisCfg struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"poolSize"`
}
type SecurityCfg struct {
	AdminHMACSecret string `mapstructure:"adminHmacSecret"`
}
type GatewayCfg struct {
	// 未配置时回落到 Paytm 预发环境地址
	GatewayURL    string `mapstructure:"gatewayUrl"`
	StatusURL     string `mapstructure:"statusUrl"`
	OrderGuardSec int    `mapstructure:"orderGuardSec"`
}

type Root struct {
	Server   ServerCfg   `mapstructure:"server"`
	Mysql    MysqlCfg    `mapstructure:"mysql"`
	RabbitMQ RabbitCfg   `mapstructure:"rabbitmq"`
	Redis    RedisCfg    `mapstructure:"redis"`
	Security SecurityCfg `mapstructure:"security"`
	Gateway  GatewayCfg  `mapstructure:"gateway"`
}

var C Root

func Init() {
	env := flag.String("env", "dev", "config env: dev|prod")
	flag.Parse()

	v := viper.New()
	v.SetConfigFile("config/config." + *env + ".yaml")
	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("read config file failed: %v", err)
	}
	if err := v.Unmarshal(&C); err != nil {
		log.Fatalf("unmarshal config failed: %v", err)
	}

	// sane defaults
	if strings.TrimSpace(C.Server.Port) == "" {
		C.Server.Port = "8080"
	}
	if strings.TrimSpace(C.Gateway.GatewayURL) == "" {
		C.Gateway.GatewayURL = "https://securegw-stage.paytm.in/theia/processTransaction"
	}
	if strings.TrimSpace(C.Gateway.StatusURL) == "" {
		C.Gateway.StatusURL = "https://securegw-stage.paytm.in/merchant-status/getTxnStatus"
	}
	if C.Gateway.OrderGuardSec <= 0 {
		C.Gateway.OrderGuardSec = 300
	}
}
