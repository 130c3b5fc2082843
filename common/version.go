package common

const Version = `v1.1.0`
