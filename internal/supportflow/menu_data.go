package supportflow

// DefaultMenu returns the support menu shipped with the bot
func DefaultMenu() *Menu {
	return MustMenu(
		Category{
			Key:   "erro_app",
			Name:  "Erro no aplicativo",
			Title: "Entendi, escolha abaixo o tipo de erro que você está enfrentando:",
			Options: []Option{
				{Key: "app_fecha", Label: "O app fecha sozinho", Level2: []string{
					"Fecha ao abrir o app",
					"Fecha ao abrir determinada tela (ex: perfil, agendamento)",
					"Fecha após interação (ex: ao enviar formulário)",
					"Fecha com mensagem de erro / crash log",
					"Outro",
				}},
				{Key: "app_lento", Label: "O app está lento", Level2: []string{
					"Lentidão geral (tudo demora)",
					"Lentidão só em telas específicas",
					"Travamentos intermitentes",
					"Consumo excessivo de bateria",
					"Outro",
				}},
				{Key: "login", Label: "Não consigo fazer login", Level2: []string{
					"Esqueci a senha",
					"Código de verificação (SMS/Email) não chega",
					"Usuário/senha inválido mesmo corretos",
					"App trava na tela de login",
					"Outro problema de login",
				}},
				{Key: "notificacoes", Label: "Não recebo notificações", Level2: []string{
					"Não recebo push (aplicativo)",
					"Recebo, mas atrasadas",
					"Recebo notificações diferentes do esperado",
					"Configurações de notificação não salvam",
					"Outro",
				}},
				{Key: "carregamento", Label: "Tela/recursos não carregam", Level2: []string{
					"Imagens não carregam",
					"Listas/feeds vazios",
					"Formulários não carregam campos",
					"Erro 500/timeout em requisições",
					"Outro",
				}},
				{Key: "outro_erro_app", Label: "Outro erro", Level2: []string{
					"Falha em sincronização de dados",
					"Problema com localidade/idioma",
					"Outro (campo livre)",
				}},
			},
		},
		Category{
			Key:   "oficina",
			Name:  "Problema com oficina",
			Title: "Sobre o problema com a oficina, escolha a opção que melhor descreve:",
			Options: []Option{
				{Key: "sem_resposta", Label: "A oficina não respondeu", Level2: []string{
					"Sem resposta por >1 hora",
					"Sem resposta por >24 horas",
					"Oficina abriu a conversa mas não respondeu",
					"Oficina leu mas não respondeu",
					"Outro",
				}},
				{Key: "orcamento", Label: "Problema no orçamento", Level2: []string{
					"Orçamento demora (não chega)",
					"Orçamento divergente do combinado",
					"Valores faltando/desconhecidos",
					"Não há detalhamento dos serviços",
					"Outro",
				}},
				{Key: "atendimento_presencial", Label: "Atendimento presencial ruim", Level2: []string{
					"Má educação/atitude da equipe",
					"Atraso no atendimento sem aviso",
					"Falta de peças/recursos no local",
					"Local não corresponde ao anunciado",
					"Outro",
				}},
				{Key: "servico_nao_realizado", Label: "Serviço não realizado", Level2: []string{
					"Serviço incompleto",
					"Serviço feito de forma incorreta",
					"Peças trocadas erradas ou sem autorização",
					"Prazo não cumprido",
					"Outro",
				}},
				{Key: "cancelamento", Label: "Oficina cancelou sem aviso", Level2: []string{
					"Cancelamento com pouca antecedência",
					"Cancelamento sem justificativa",
					"Cancelamento com prejuízo financeiro (ex.: já havia pago)",
					"Outro",
				}},
				{Key: "outro_oficina", Label: "Outros problemas com oficina", Level2: []string{
					"Reclamação sobre garantia",
					"Problema de segurança no local",
					"Outro (campo livre)",
				}},
			},
		},
		Category{
			Key:   "pagamento",
			Name:  "Pagamento",
			Title: "Sobre o pagamento, escolha a opção que melhor se aplica:",
			Options: []Option{
				{Key: "falha_pagamento", Label: "Não consegui efetuar o pagamento", Level2: []string{
					"Cartão recusado (sem motivo)",
					"Erro no redirecionamento do gateway",
					"PIX/transferência não reconhecida",
					"Boleto com erro no código de barras",
					"Outro",
				}},
				{Key: "cobranca_duplicada", Label: "Cobrança duplicada", Level2: []string{
					"Cartão cobrado 2x",
					"PIX pago 2x",
					"Boleto pago 2x",
					"App mostra duas cobranças mas banco não",
					"Outro",
				}},
				{Key: "reembolso", Label: "Quero reembolso", Level2: []string{
					"Solicitei reembolso e não recebi",
					"Reembolso parcial incorreto",
					"Prazo do reembolso muito longo",
					"Reembolso negado (quero contestar)",
					"Outro",
				}},
				{Key: "metodo_invalido", Label: "Método de pagamento não funciona", Level2: []string{
					"Cartão não aparece como opção",
					"Erro ao adicionar cartão",
					"Pagamento por carteira digital falha",
					"Outro",
				}},
				{Key: "status_incorreto", Label: "Status do pagamento não atualiza", Level2: []string{
					"Pagamento consta pendente mas foi pago",
					"Pagamento confirmado mas serviço não liberado",
					"Confirmação recebida, mas sistema não atualiza",
					"Outro",
				}},
				{Key: "outro_pag", Label: "Outro problema financeiro", Level2: []string{
					"Dúvida sobre fatura/nota fiscal",
					"Cobrança de taxa indevida",
					"Outro (campo livre)",
				}},
			},
		},
		Category{
			Key:   "outros",
			Name:  "Outros",
			Title: "Escolha a categoria que mais se aproxima do seu problema:",
			Options: []Option{
				{Key: "duvida_geral", Label: "Dúvida geral sobre o app", Level2: []string{
					"Como usar tal funcionalidade?",
					"Qual política de reembolso?",
					"Como contato comercial?",
					"Outro",
				}},
				{Key: "solicitacao_func", Label: "Solicitação de funcionalidade", Level2: []string{
					"Nova tela / função X (ex: agendar)",
					"Integração com serviço Y",
					"Melhorias de UX/UI",
					"Outro",
				}},
				{Key: "cadastro", Label: "Problema com cadastro", Level2: []string{
					"Não recebo e-mail de confirmação",
					"CPF/CNPJ não aceita",
					"Atualizar dados cadastrais",
					"Outro",
				}},
				{Key: "sugestao", Label: "Sugestão de melhoria", Level2: []string{
					"Sugestão de design",
					"Sugestão de fluxo",
					"Sugestão de nova feature",
					"Outro",
				}},
				{Key: "notificacao_geral", Label: "Problemas com notificações (genérico)", Level2: []string{
					"Não recebo emails",
					"Notificações in-app inconsistentes",
					"Outro",
				}},
				{Key: "outro_geral", Label: "Outro tipo de problema", Level2: []string{
					"Assuntos legais / privacidade",
					"Parcerias / comerciais",
					"Outro (campo livre)",
				}},
			},
		},
	)
}
