package config

// SafeErrorMessage 生产环境隐藏内部错误详情
// debug 模式（或配置未初始化时）返回原始错误，release 模式返回 fallback
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig != nil && GlobalConfig.Server.Mode == "release" {
		return fallback
	}
	return err.Error()
}
